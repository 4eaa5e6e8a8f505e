package services_test

import (
	"context"
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/rollball/tournament-system/models"
	"github.com/rollball/tournament-system/repositories"
	"github.com/rollball/tournament-system/services"
)

type fakeGroupRepo struct {
	groups map[int]*models.Group
}

func (f *fakeGroupRepo) Create(_ context.Context, g *models.Group) error {
	g.ID = len(f.groups) + 1
	f.groups[g.ID] = g
	return nil
}

func (f *fakeGroupRepo) GetByID(_ context.Context, id int) (*models.Group, error) {
	g, ok := f.groups[id]
	if !ok {
		return nil, repositories.ErrGroupNotFound
	}
	copied := *g
	return &copied, nil
}

func (f *fakeGroupRepo) ListByEvent(_ context.Context, eventID int) ([]models.Group, error) {
	var out []models.Group
	for _, g := range f.groups {
		if g.EventID == eventID {
			out = append(out, *g)
		}
	}
	return out, nil
}

func (f *fakeGroupRepo) Delete(_ context.Context, id int) error {
	if _, ok := f.groups[id]; !ok {
		return repositories.ErrGroupNotFound
	}
	delete(f.groups, id)
	return nil
}

type fakeTeamRepo struct {
	teams map[int]*models.Team
}

func (f *fakeTeamRepo) Create(_ context.Context, _ repositories.SQLExecutor, t *models.Team) error {
	t.ID = len(f.teams) + 1
	f.teams[t.ID] = t
	return nil
}

func (f *fakeTeamRepo) GetByID(_ context.Context, id int) (*models.Team, error) {
	t, ok := f.teams[id]
	if !ok {
		return nil, repositories.ErrTeamNotFound
	}
	copied := *t
	return &copied, nil
}

func (f *fakeTeamRepo) List(_ context.Context) ([]models.Team, error) {
	var out []models.Team
	for _, t := range f.teams {
		out = append(out, *t)
	}
	return out, nil
}

func (f *fakeTeamRepo) ListByEvent(_ context.Context, eventID int) ([]models.Team, error) {
	var out []models.Team
	for _, t := range f.teams {
		if t.EventID != nil && *t.EventID == eventID {
			out = append(out, *t)
		}
	}
	return out, nil
}

func (f *fakeTeamRepo) ListByGroup(_ context.Context, groupID int) ([]models.Team, error) {
	var out []models.Team
	for _, t := range f.teams {
		if t.GroupID != nil && *t.GroupID == groupID {
			out = append(out, *t)
		}
	}
	return out, nil
}

func (f *fakeTeamRepo) CountByEvent(_ context.Context, _ repositories.SQLExecutor, eventID int) (int, error) {
	teams, _ := f.ListByEvent(context.Background(), eventID)
	return len(teams), nil
}

func (f *fakeTeamRepo) Update(_ context.Context, t *models.Team) error {
	if _, ok := f.teams[t.ID]; !ok {
		return repositories.ErrTeamNotFound
	}
	copied := *t
	f.teams[t.ID] = &copied
	return nil
}

func (f *fakeTeamRepo) UpdateEventID(_ context.Context, _ repositories.SQLExecutor, teamID int, eventID *int) error {
	t, ok := f.teams[teamID]
	if !ok {
		return repositories.ErrTeamNotFound
	}
	t.EventID = eventID
	return nil
}

func (f *fakeTeamRepo) UpdateGroupID(_ context.Context, _ repositories.SQLExecutor, teamID int, groupID *int) error {
	t, ok := f.teams[teamID]
	if !ok {
		return repositories.ErrTeamNotFound
	}
	t.GroupID = groupID
	return nil
}

func (f *fakeTeamRepo) Delete(_ context.Context, id int) error {
	if _, ok := f.teams[id]; !ok {
		return repositories.ErrTeamNotFound
	}
	delete(f.teams, id)
	return nil
}

type fakeEventRepo struct {
	events map[int]*models.Event
}

func (f *fakeEventRepo) Create(_ context.Context, e *models.Event) error {
	e.ID = len(f.events) + 1
	f.events[e.ID] = e
	return nil
}

func (f *fakeEventRepo) GetByID(_ context.Context, id int) (*models.Event, error) {
	e, ok := f.events[id]
	if !ok {
		return nil, repositories.ErrEventNotFound
	}
	copied := *e
	return &copied, nil
}

func (f *fakeEventRepo) List(_ context.Context) ([]models.Event, error) {
	var out []models.Event
	for _, e := range f.events {
		out = append(out, *e)
	}
	return out, nil
}

func (f *fakeEventRepo) Update(_ context.Context, e *models.Event) error {
	if _, ok := f.events[e.ID]; !ok {
		return repositories.ErrEventNotFound
	}
	copied := *e
	f.events[e.ID] = &copied
	return nil
}

func (f *fakeEventRepo) Delete(_ context.Context, id int) error {
	if _, ok := f.events[id]; !ok {
		return repositories.ErrEventNotFound
	}
	delete(f.events, id)
	return nil
}

func TestGroupServiceAssignTeam(t *testing.T) {
	Convey("Given an event with one group and several teams", t, func() {
		ctx := context.Background()
		eventID := 1

		groupRepo := &fakeGroupRepo{groups: map[int]*models.Group{
			10: {ID: 10, EventID: eventID, Name: "Group A"},
		}}
		eventRepo := &fakeEventRepo{events: map[int]*models.Event{
			eventID: {ID: eventID, Name: "District Championship", MaxTeams: 16},
		}}
		teamRepo := &fakeTeamRepo{teams: map[int]*models.Team{}}
		for i := 1; i <= 7; i++ {
			id := i
			evID := eventID
			teamRepo.teams[id] = &models.Team{ID: id, Name: "Team", EventID: &evID}
		}

		svc := services.NewGroupService(groupRepo, teamRepo, eventRepo)

		Convey("Teams registered for the event can be assigned", func() {
			So(svc.AssignTeam(ctx, 10, 1), ShouldBeNil)
			So(svc.AssignTeam(ctx, 10, 2), ShouldBeNil)
			So(svc.AssignTeam(ctx, 10, 3), ShouldBeNil)

			group, err := svc.GetGroupByID(ctx, 10)
			So(err, ShouldBeNil)
			So(group.Teams, ShouldHaveLength, 3)
		})

		Convey("A sixth team cannot join the group", func() {
			for i := 1; i <= models.MaxGroupSize; i++ {
				So(svc.AssignTeam(ctx, 10, i), ShouldBeNil)
			}
			So(svc.AssignTeam(ctx, 10, 6), ShouldEqual, services.ErrGroupFull)
		})

		Convey("A team from another event is rejected", func() {
			otherEvent := 99
			teamRepo.teams[50] = &models.Team{ID: 50, Name: "Outsider", EventID: &otherEvent}

			So(svc.AssignTeam(ctx, 10, 50), ShouldEqual, services.ErrGroupWrongEvent)
		})

		Convey("An unregistered team is rejected", func() {
			teamRepo.teams[51] = &models.Team{ID: 51, Name: "Unregistered"}

			So(svc.AssignTeam(ctx, 10, 51), ShouldEqual, services.ErrGroupWrongEvent)
		})

		Convey("Removing a team frees its slot", func() {
			for i := 1; i <= models.MaxGroupSize; i++ {
				So(svc.AssignTeam(ctx, 10, i), ShouldBeNil)
			}
			So(svc.RemoveTeam(ctx, 10, 3), ShouldBeNil)
			So(svc.AssignTeam(ctx, 10, 6), ShouldBeNil)
		})

		Convey("Removing a team that is not in the group fails", func() {
			So(svc.RemoveTeam(ctx, 10, 1), ShouldEqual, services.ErrNotFound)
		})

		Convey("Deleting the group detaches its teams", func() {
			So(svc.AssignTeam(ctx, 10, 1), ShouldBeNil)
			So(svc.AssignTeam(ctx, 10, 2), ShouldBeNil)

			So(svc.DeleteGroup(ctx, 10), ShouldBeNil)

			team, err := teamRepo.GetByID(ctx, 1)
			So(err, ShouldBeNil)
			So(team.GroupID, ShouldBeNil)
		})
	})
}
