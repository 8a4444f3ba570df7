// Package seed provides the reference clubs and mock sessions loaded at startup.
package seed

import "clubsessions/internal/domain"

// Clubs returns the reference club set.
func Clubs() []domain.Club {
	return []domain.Club{
		{ID: 1, Name: "Downtown Dinkers", Logo: "https://picsum.photos/seed/club1/100"},
		{ID: 2, Name: "Riverside Rackets", Logo: "https://picsum.photos/seed/club2/100"},
		{ID: 3, Name: "Northside Smash Club", Logo: "https://picsum.photos/seed/club3/100"},
		{ID: 4, Name: "Harbor Court Collective", Logo: "https://picsum.photos/seed/club4/100"},
	}
}

// Sessions returns the mock sessions, each referencing a club from clubs by
// position. It panics if clubs has fewer than four entries, since the mock
// data is written against Clubs.
func Sessions(clubs []domain.Club) []*domain.Session {
	return []*domain.Session{
		{
			ID:           1,
			Name:         "Sunrise Social Doubles",
			Club:         clubs[0],
			Date:         "2024-08-15",
			Time:         "07:30",
			Duration:     90,
			Location:     "Central Park Courts",
			Description:  "Start the day with relaxed doubles. Rotating partners, coffee afterwards.",
			Participants: domain.Participants{Current: 6, Max: 12},
			Price:        5,
			Type:         domain.SessionTypeSocial,
			SkillLevel:   domain.SkillLevelAll,
			Host:         "Maria Lopez",
			Privacy:      domain.PrivacyPublic,
		},
		{
			ID:           2,
			Name:         "Intermediate Drills & Play",
			Club:         clubs[1],
			Date:         "2024-08-15",
			Time:         "18:00",
			Duration:     120,
			Location:     "Riverside Sports Center",
			Description:  "Forty minutes of structured drills on dinks and resets, then open play.",
			Participants: domain.Participants{Current: 10, Max: 16},
			Price:        15,
			Type:         domain.SessionTypeTraining,
			SkillLevel:   domain.SkillLevelIntermediate,
			Host:         "Coach Daniel Kim",
			Privacy:      domain.PrivacyPublic,
		},
		{
			ID:           3,
			Name:         "Beginner Clinic",
			Club:         clubs[2],
			Date:         "2024-08-16",
			Time:         "10:00",
			Duration:     60,
			Location:     "Northside Community Gym",
			Description:  "Rules, scoring and the basic strokes. Paddles provided.",
			Participants: domain.Participants{Current: 4, Max: 8},
			Price:        20,
			Type:         domain.SessionTypeTraining,
			SkillLevel:   domain.SkillLevelBeginner,
			Host:         "Priya Shah",
			Privacy:      domain.PrivacyPublic,
		},
		{
			ID:           4,
			Name:         "Friday Night Round Robin",
			Club:         clubs[0],
			Date:         "2024-08-16",
			Time:         "19:30",
			Duration:     150,
			Location:     "Central Park Courts",
			Description:  "Round robin with ladder scoring. Lights on until late.",
			Participants: domain.Participants{Current: 14, Max: 16},
			Price:        10,
			Type:         domain.SessionTypeRoundRobin,
			SkillLevel:   domain.SkillLevelIntermediate,
			Host:         "Maria Lopez",
			Privacy:      domain.PrivacyPublic,
		},
		{
			ID:           5,
			Name:         "Advanced Ladder Challenge",
			Club:         clubs[3],
			Date:         "2024-08-17",
			Time:         "13:00",
			Duration:     180,
			Location:     "Harbor Indoor Arena",
			Description:  "Competitive ladder matches for 4.0+ players. Results feed the club ranking.",
			Participants: domain.Participants{Current: 12, Max: 12},
			Price:        25,
			Type:         domain.SessionTypeCompetition,
			SkillLevel:   domain.SkillLevelAdvanced,
			Host:         "Tom Becker",
			Privacy:      domain.PrivacyPublic,
		},
		{
			ID:           6,
			Name:         "Members Practice",
			Club:         clubs[1],
			Date:         "2024-08-17",
			Time:         "08:00",
			Duration:     90,
			Location:     "Riverside Sports Center",
			Description:  "Closed practice for club members working on tournament prep.",
			Participants: domain.Participants{Current: 3, Max: 8},
			Price:        0,
			Type:         domain.SessionTypeTraining,
			SkillLevel:   domain.SkillLevelAdvanced,
			Host:         "Coach Daniel Kim",
			Privacy:      domain.PrivacyPrivate,
		},
		{
			ID:           7,
			Name:         "Sunday Social Mixer",
			Club:         clubs[2],
			Date:         "2024-08-18",
			Time:         "15:00",
			Duration:     120,
			Location:     "Northside Community Gym",
			Description:  "Mixed doubles, music and snacks. Everyone welcome.",
			Participants: domain.Participants{Current: 9, Max: 20},
			Price:        8,
			Type:         domain.SessionTypeSocial,
			SkillLevel:   domain.SkillLevelAll,
			Host:         "Priya Shah",
			Privacy:      domain.PrivacyPublic,
		},
		{
			ID:           8,
			Name:         "Harbor Open Qualifier",
			Club:         clubs[3],
			Date:         "2024-08-18",
			Time:         "09:00",
			Duration:     240,
			Location:     "Harbor Indoor Arena",
			Description:  "Qualifying rounds for the Harbor Open. Registration closes when full.",
			Participants: domain.Participants{Current: 20, Max: 32},
			Price:        40,
			Type:         domain.SessionTypeCompetition,
			SkillLevel:   domain.SkillLevelIntermediate,
			Host:         "Tom Becker",
			Privacy:      domain.PrivacyPublic,
		},
	}
}
