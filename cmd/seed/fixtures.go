package main

import "cricguess/internal/model"

// Demo catalog: a handful of famous finals plus enough extra players that
// the autocomplete list has names who never appear in any fixture.

func seedPlayers() []model.Player {
	return []model.Player{
		{ID: "ms-dhoni", FullName: "MS Dhoni", Country: "India", Flag: "🇮🇳", Role: model.RoleWicketkeeper, Teams: []string{"India", "Chennai Super Kings"}},
		{ID: "gautam-gambhir", FullName: "Gautam Gambhir", Country: "India", Flag: "🇮🇳", Role: model.RoleBatsman, Teams: []string{"India", "Kolkata Knight Riders"}},
		{ID: "virat-kohli", FullName: "Virat Kohli", Country: "India", Flag: "🇮🇳", Role: model.RoleBatsman, Teams: []string{"India", "Royal Challengers Bangalore"}},
		{ID: "sachin-tendulkar", FullName: "Sachin Tendulkar", Country: "India", Flag: "🇮🇳", Role: model.RoleBatsman, Teams: []string{"India", "Mumbai Indians"}},
		{ID: "zaheer-khan", FullName: "Zaheer Khan", Country: "India", Flag: "🇮🇳", Role: model.RoleBowler, Teams: []string{"India"}},
		{ID: "rohit-sharma", FullName: "Rohit Sharma", Country: "India", Flag: "🇮🇳", Role: model.RoleBatsman, Teams: []string{"India", "Mumbai Indians"}},
		{ID: "irfan-pathan", FullName: "Irfan Pathan", Country: "India", Flag: "🇮🇳", Role: model.RoleAllRounder, Teams: []string{"India"}},
		{ID: "rp-singh", FullName: "RP Singh", Country: "India", Flag: "🇮🇳", Role: model.RoleBowler, Teams: []string{"India"}},
		{ID: "mohinder-amarnath", FullName: "Mohinder Amarnath", Country: "India", Flag: "🇮🇳", Role: model.RoleAllRounder, Teams: []string{"India"}},
		{ID: "kapil-dev", FullName: "Kapil Dev", Country: "India", Flag: "🇮🇳", Role: model.RoleAllRounder, Teams: []string{"India"}},
		{ID: "krishnamachari-srikkanth", FullName: "Krishnamachari Srikkanth", Country: "India", Flag: "🇮🇳", Role: model.RoleBatsman, Teams: []string{"India"}},
		{ID: "mahela-jayawardene", FullName: "Mahela Jayawardene", Country: "Sri Lanka", Flag: "🇱🇰", Role: model.RoleBatsman, Teams: []string{"Sri Lanka"}},
		{ID: "kumar-sangakkara", FullName: "Kumar Sangakkara", Country: "Sri Lanka", Flag: "🇱🇰", Role: model.RoleWicketkeeper, Teams: []string{"Sri Lanka"}},
		{ID: "misbah-ul-haq", FullName: "Misbah-ul-Haq", Country: "Pakistan", Flag: "🇵🇰", Role: model.RoleBatsman, Teams: []string{"Pakistan"}},
		{ID: "ben-stokes", FullName: "Ben Stokes", Country: "England", Flag: "🏴󠁧󠁢󠁥󠁮󠁧󠁿", Role: model.RoleAllRounder, Teams: []string{"England", "Rajasthan Royals"}},
		{ID: "jos-buttler", FullName: "Jos Buttler", Country: "England", Flag: "🏴󠁧󠁢󠁥󠁮󠁧󠁿", Role: model.RoleWicketkeeper, Teams: []string{"England", "Rajasthan Royals"}},
		{ID: "joe-root", FullName: "Joe Root", Country: "England", Flag: "🏴󠁧󠁢󠁥󠁮󠁧󠁿", Role: model.RoleBatsman, Teams: []string{"England"}},
		{ID: "liam-plunkett", FullName: "Liam Plunkett", Country: "England", Flag: "🏴󠁧󠁢󠁥󠁮󠁧󠁿", Role: model.RoleBowler, Teams: []string{"England"}},
		{ID: "david-willey", FullName: "David Willey", Country: "England", Flag: "🏴󠁧󠁢󠁥󠁮󠁧󠁿", Role: model.RoleBowler, Teams: []string{"England"}},
		{ID: "andrew-flintoff", FullName: "Andrew Flintoff", Country: "England", Flag: "🏴󠁧󠁢󠁥󠁮󠁧󠁿", Role: model.RoleAllRounder, Teams: []string{"England"}},
		{ID: "henry-nicholls", FullName: "Henry Nicholls", Country: "New Zealand", Flag: "🇳🇿", Role: model.RoleBatsman, Teams: []string{"New Zealand"}},
		{ID: "trent-boult", FullName: "Trent Boult", Country: "New Zealand", Flag: "🇳🇿", Role: model.RoleBowler, Teams: []string{"New Zealand", "Mumbai Indians"}},
		{ID: "viv-richards", FullName: "Viv Richards", Country: "West Indies", Flag: "🌴", Role: model.RoleBatsman, Teams: []string{"West Indies"}},
		{ID: "marlon-samuels", FullName: "Marlon Samuels", Country: "West Indies", Flag: "🌴", Role: model.RoleBatsman, Teams: []string{"West Indies"}},
		{ID: "carlos-brathwaite", FullName: "Carlos Brathwaite", Country: "West Indies", Flag: "🌴", Role: model.RoleAllRounder, Teams: []string{"West Indies"}},
		{ID: "shane-warne", FullName: "Shane Warne", Country: "Australia", Flag: "🇦🇺", Role: model.RoleBowler, Teams: []string{"Australia"}},
		{ID: "ricky-ponting", FullName: "Ricky Ponting", Country: "Australia", Flag: "🇦🇺", Role: model.RoleBatsman, Teams: []string{"Australia"}},
		{ID: "jacques-kallis", FullName: "Jacques Kallis", Country: "South Africa", Flag: "🇿🇦", Role: model.RoleAllRounder, Teams: []string{"South Africa", "Kolkata Knight Riders"}},
	}
}

func seedPuzzles() []model.Puzzle {
	return []model.Puzzle{
		{
			ID:        1,
			TargetID:  "ms-dhoni",
			Teams:     []string{"India", "Sri Lanka"},
			Venue:     "Wankhede Stadium, Mumbai",
			MatchDate: "2011-04-02",
			Season:    "2011 ICC Cricket World Cup",
			Winner:    "India",
			TeamScores: map[string]model.TeamScore{
				"Sri Lanka": {Runs: 274, Wickets: 6},
				"India":     {Runs: 277, Wickets: 4},
			},
			Participants: []model.Performance{
				{PlayerID: "ms-dhoni", Name: "MS Dhoni", Team: "India", Role: model.RoleWicketkeeper, Runs: 91, BallsFaced: 79, Fours: 8, Sixes: 2, Played: true},
				{PlayerID: "gautam-gambhir", Name: "Gautam Gambhir", Team: "India", Role: model.RoleBatsman, Runs: 97, BallsFaced: 122, Fours: 9, Played: true},
				{PlayerID: "virat-kohli", Name: "Virat Kohli", Team: "India", Role: model.RoleBatsman, Runs: 35, BallsFaced: 49, Fours: 4, Played: true},
				{PlayerID: "sachin-tendulkar", Name: "Sachin Tendulkar", Team: "India", Role: model.RoleBatsman, Runs: 18, BallsFaced: 14, Fours: 2, Played: true},
				{PlayerID: "zaheer-khan", Name: "Zaheer Khan", Team: "India", Role: model.RoleBowler, Wickets: 2, BallsBowled: 60, Played: true},
				{PlayerID: "mahela-jayawardene", Name: "Mahela Jayawardene", Team: "Sri Lanka", Role: model.RoleBatsman, Runs: 103, BallsFaced: 88, Fours: 13, Played: true},
				{PlayerID: "kumar-sangakkara", Name: "Kumar Sangakkara", Team: "Sri Lanka", Role: model.RoleWicketkeeper, Runs: 48, BallsFaced: 67, Fours: 5, Played: true},
			},
			Trivia: []string{
				"The captain promoted himself above the tournament's form batsman and finished it with a six.",
				"The host nation's first title in 28 years.",
			},
		},
		{
			ID:        2,
			TargetID:  "ben-stokes",
			Teams:     []string{"England", "New Zealand"},
			Venue:     "Lord's, London",
			MatchDate: "2019-07-14",
			Season:    "2019 ICC Cricket World Cup",
			Winner:    "England",
			TeamScores: map[string]model.TeamScore{
				"New Zealand": {Runs: 241, Wickets: 8},
				"England":     {Runs: 241, Wickets: 10},
			},
			Participants: []model.Performance{
				{PlayerID: "ben-stokes", Name: "Ben Stokes", Team: "England", Role: model.RoleAllRounder, Runs: 84, BallsFaced: 98, Fours: 5, Sixes: 2, Played: true},
				{PlayerID: "jos-buttler", Name: "Jos Buttler", Team: "England", Role: model.RoleWicketkeeper, Runs: 59, BallsFaced: 60, Fours: 6, Played: true},
				{PlayerID: "joe-root", Name: "Joe Root", Team: "England", Role: model.RoleBatsman, Runs: 7, BallsFaced: 30, Played: true},
				{PlayerID: "liam-plunkett", Name: "Liam Plunkett", Team: "England", Role: model.RoleBowler, Runs: 10, Wickets: 3, BallsBowled: 60, Played: true},
				{PlayerID: "henry-nicholls", Name: "Henry Nicholls", Team: "New Zealand", Role: model.RoleBatsman, Runs: 55, BallsFaced: 77, Fours: 4, Played: true},
				{PlayerID: "trent-boult", Name: "Trent Boult", Team: "New Zealand", Role: model.RoleBowler, Runs: 1, BallsBowled: 60, Played: true},
			},
			Trivia: []string{
				"The match and the super over both finished level.",
				"Decided on boundary count, a rule retired soon after.",
			},
		},
		{
			ID:        3,
			TargetID:  "irfan-pathan",
			Teams:     []string{"India", "Pakistan"},
			Venue:     "Wanderers Stadium, Johannesburg",
			MatchDate: "2007-09-24",
			Season:    "2007 ICC World Twenty20",
			Winner:    "India",
			TeamScores: map[string]model.TeamScore{
				"India":    {Runs: 157, Wickets: 5},
				"Pakistan": {Runs: 152, Wickets: 10},
			},
			Participants: []model.Performance{
				{PlayerID: "irfan-pathan", Name: "Irfan Pathan", Team: "India", Role: model.RoleAllRounder, Wickets: 3, BallsBowled: 24, Played: true},
				{PlayerID: "gautam-gambhir", Name: "Gautam Gambhir", Team: "India", Role: model.RoleBatsman, Runs: 75, BallsFaced: 54, Fours: 8, Sixes: 2, Played: true},
				{PlayerID: "rohit-sharma", Name: "Rohit Sharma", Team: "India", Role: model.RoleBatsman, Runs: 30, BallsFaced: 16, Sixes: 1, Played: true},
				{PlayerID: "rp-singh", Name: "RP Singh", Team: "India", Role: model.RoleBowler, Runs: 4, Wickets: 3, BallsBowled: 24, Played: true},
				{PlayerID: "misbah-ul-haq", Name: "Misbah-ul-Haq", Team: "Pakistan", Role: model.RoleBatsman, Runs: 43, BallsFaced: 38, Sixes: 4, Played: true},
			},
			Trivia: []string{
				"A scoop to short fine leg ended the chase six runs short.",
				"The inaugural edition of the shortest format's world title.",
			},
		},
		{
			ID:        4,
			TargetID:  "mohinder-amarnath",
			Teams:     []string{"India", "West Indies"},
			Venue:     "Lord's, London",
			MatchDate: "1983-06-25",
			Season:    "1983 Prudential World Cup",
			Winner:    "India",
			TeamScores: map[string]model.TeamScore{
				"India":       {Runs: 183, Wickets: 10},
				"West Indies": {Runs: 140, Wickets: 10},
			},
			Participants: []model.Performance{
				{PlayerID: "mohinder-amarnath", Name: "Mohinder Amarnath", Team: "India", Role: model.RoleAllRounder, Runs: 26, Wickets: 3, BallsFaced: 80, BallsBowled: 42, Played: true},
				{PlayerID: "krishnamachari-srikkanth", Name: "Krishnamachari Srikkanth", Team: "India", Role: model.RoleBatsman, Runs: 38, BallsFaced: 57, Fours: 7, Sixes: 1, Played: true},
				{PlayerID: "kapil-dev", Name: "Kapil Dev", Team: "India", Role: model.RoleAllRounder, Runs: 15, Wickets: 1, BallsBowled: 66, Played: true},
				{PlayerID: "viv-richards", Name: "Viv Richards", Team: "West Indies", Role: model.RoleBatsman, Runs: 33, BallsFaced: 28, Fours: 7, Played: true},
			},
			Trivia: []string{
				"A backpedalling catch at midwicket removed the most feared batsman in the world.",
				"183 proved enough against the two-time defending champions.",
			},
		},
		{
			ID:        5,
			TargetID:  "marlon-samuels",
			Teams:     []string{"West Indies", "England"},
			Venue:     "Eden Gardens, Kolkata",
			MatchDate: "2016-04-03",
			Season:    "2016 ICC World Twenty20",
			Winner:    "West Indies",
			TeamScores: map[string]model.TeamScore{
				"England":     {Runs: 155, Wickets: 9},
				"West Indies": {Runs: 161, Wickets: 6},
			},
			Participants: []model.Performance{
				{PlayerID: "marlon-samuels", Name: "Marlon Samuels", Team: "West Indies", Role: model.RoleBatsman, Runs: 85, BallsFaced: 66, Fours: 9, Sixes: 2, Played: true},
				{PlayerID: "carlos-brathwaite", Name: "Carlos Brathwaite", Team: "West Indies", Role: model.RoleAllRounder, Runs: 34, Wickets: 3, BallsFaced: 10, Sixes: 4, BallsBowled: 24, Played: true},
				{PlayerID: "joe-root", Name: "Joe Root", Team: "England", Role: model.RoleBatsman, Runs: 54, Wickets: 2, BallsFaced: 36, Played: true},
				{PlayerID: "ben-stokes", Name: "Ben Stokes", Team: "England", Role: model.RoleAllRounder, Runs: 13, BallsBowled: 23, Played: true},
				{PlayerID: "david-willey", Name: "David Willey", Team: "England", Role: model.RoleBowler, Runs: 21, Wickets: 3, BallsBowled: 24, Played: true},
			},
			Trivia: []string{
				"Four consecutive sixes off the last over settled it.",
				"An unbeaten 85 carried the chase while wickets fell around it.",
			},
		},
		{
			ID:        6,
			TargetID:  "andrew-flintoff",
			Teams:     []string{"England", "Australia"},
			Venue:     "Edgbaston, Birmingham",
			MatchDate: "2005-08-04",
			Season:    "2005 Ashes",
			Winner:    "England",
			TeamScores: map[string]model.TeamScore{
				"England":   {Runs: 407, Wickets: 10},
				"Australia": {Runs: 308, Wickets: 10},
			},
			Participants: []model.Performance{
				{PlayerID: "andrew-flintoff", Name: "Andrew Flintoff", Team: "England", Role: model.RoleAllRounder, Runs: 141, Wickets: 7, Fours: 12, Sixes: 9, Played: true},
				{PlayerID: "shane-warne", Name: "Shane Warne", Team: "Australia", Role: model.RoleBowler, Runs: 50, Wickets: 10, Played: true},
				{PlayerID: "ricky-ponting", Name: "Ricky Ponting", Team: "Australia", Role: model.RoleBatsman, Runs: 61, Played: true},
			},
			Trivia: []string{
				"Won by two runs, the narrowest margin in the rivalry's history.",
				"Twin fifties and seven wickets from one all-rounder across the match.",
			},
		},
	}
}
