package brackets

// qualifiersPerGroup is fixed by the competition rules: the top two of every
// group advance to the knockout stage.
const qualifiersPerGroup = 2

// GroupStandings pairs a group with its computed table.
type GroupStandings struct {
	GroupID   int            `json:"group_id"`
	GroupName string         `json:"group_name"`
	Standings []TeamStanding `json:"standings"`
}

// SelectQualifiers takes the top two teams of every group and concatenates
// them in group order. No re-ranking happens across groups; the resulting
// order is the seeding order used by GenerateBracket.
func SelectQualifiers(groups []GroupStandings) []TeamStanding {
	qualified := make([]TeamStanding, 0, len(groups)*qualifiersPerGroup)

	for _, group := range groups {
		top := group.Standings
		if len(top) > qualifiersPerGroup {
			top = top[:qualifiersPerGroup]
		}
		for _, row := range top {
			row.GroupName = group.GroupName
			qualified = append(qualified, row)
		}
	}

	return qualified
}
