package config_test

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/rollball/tournament-system/config"
)

func TestLoad(t *testing.T) {
	setRequired := func(t *testing.T) {
		t.Setenv("DATABASE_URL", "postgres://localhost/rollball?sslmode=disable")
		t.Setenv("JWT_SECRET_KEY", "test-secret")

		// Convey re-runs this closure for every leaf, but t.Setenv only
		// restores values when the whole test ends. Clear the optional
		// variables so one leaf's settings cannot leak into the next.
		for _, key := range []string{
			"SERVER_PORT",
			"CORS_ALLOWED_ORIGINS",
			"R2_ACCOUNT_ID",
			"R2_ACCESS_KEY_ID",
			"R2_SECRET_ACCESS_KEY",
			"R2_BUCKET_NAME",
			"R2_PUBLIC_BASE_URL",
		} {
			t.Setenv(key, "")
		}
	}

	Convey("With the required variables set", t, func() {
		setRequired(t)

		Convey("Defaults apply for the optional ones", func() {
			cfg, err := config.Load()
			So(err, ShouldBeNil)
			So(cfg.ServerPort, ShouldEqual, 8080)
			So(cfg.CORSAllowedOrigins, ShouldResemble, []string{"*"})
			So(cfg.R2Configured(), ShouldBeFalse)
		})

		Convey("SERVER_PORT overrides the default", func() {
			t.Setenv("SERVER_PORT", "9090")
			cfg, err := config.Load()
			So(err, ShouldBeNil)
			So(cfg.ServerPort, ShouldEqual, 9090)
		})

		Convey("An unparseable port is an error", func() {
			t.Setenv("SERVER_PORT", "not-a-port")
			_, err := config.Load()
			So(err, ShouldNotBeNil)
		})

		Convey("An out-of-range port is an error", func() {
			t.Setenv("SERVER_PORT", "70000")
			_, err := config.Load()
			So(err, ShouldNotBeNil)
		})

		Convey("CORS origins are split and trimmed", func() {
			t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, https://b.example ,")
			cfg, err := config.Load()
			So(err, ShouldBeNil)
			So(cfg.CORSAllowedOrigins, ShouldResemble, []string{"https://a.example", "https://b.example"})
		})

		Convey("R2Configured requires every R2 variable", func() {
			t.Setenv("R2_ACCOUNT_ID", "acc")
			t.Setenv("R2_ACCESS_KEY_ID", "key")
			t.Setenv("R2_SECRET_ACCESS_KEY", "secret")
			t.Setenv("R2_BUCKET_NAME", "bucket")

			cfg, err := config.Load()
			So(err, ShouldBeNil)
			So(cfg.R2Configured(), ShouldBeFalse)

			t.Setenv("R2_PUBLIC_BASE_URL", "https://files.example/")
			cfg, err = config.Load()
			So(err, ShouldBeNil)
			So(cfg.R2Configured(), ShouldBeTrue)
		})
	})

	Convey("A missing DATABASE_URL is an error", t, func() {
		t.Setenv("DATABASE_URL", "")
		t.Setenv("JWT_SECRET_KEY", "test-secret")
		_, err := config.Load()
		So(err, ShouldNotBeNil)
	})

	Convey("A missing JWT_SECRET_KEY is an error", t, func() {
		t.Setenv("DATABASE_URL", "postgres://localhost/rollball")
		t.Setenv("JWT_SECRET_KEY", "")
		_, err := config.Load()
		So(err, ShouldNotBeNil)
	})
}
