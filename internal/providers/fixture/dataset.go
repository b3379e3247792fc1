package fixture

import (
	"nba-draft-hub/internal/domain/players"
	"nba-draft-hub/internal/domain/teams"
)

var (
	celtics  = teams.Team{ID: 2, Abbreviation: "BOS", City: "Boston", Conference: "East", Division: "Atlantic", FullName: "Boston Celtics", Name: "Celtics"}
	nuggets  = teams.Team{ID: 8, Abbreviation: "DEN", City: "Denver", Conference: "West", Division: "Northwest", FullName: "Denver Nuggets", Name: "Nuggets"}
	warriors = teams.Team{ID: 10, Abbreviation: "GSW", City: "Golden State", Conference: "West", Division: "Pacific", FullName: "Golden State Warriors", Name: "Warriors"}
	lakers   = teams.Team{ID: 14, Abbreviation: "LAL", City: "Los Angeles", Conference: "West", Division: "Pacific", FullName: "Los Angeles Lakers", Name: "Lakers"}
	bucks    = teams.Team{ID: 17, Abbreviation: "MIL", City: "Milwaukee", Conference: "East", Division: "Central", FullName: "Milwaukee Bucks", Name: "Bucks"}
	mavs     = teams.Team{ID: 7, Abbreviation: "DAL", City: "Dallas", Conference: "West", Division: "Southwest", FullName: "Dallas Mavericks", Name: "Mavericks"}
	spurs    = teams.Team{ID: 27, Abbreviation: "SAS", City: "San Antonio", Conference: "West", Division: "Southwest", FullName: "San Antonio Spurs", Name: "Spurs"}
	sixers   = teams.Team{ID: 23, Abbreviation: "PHI", City: "Philadelphia", Conference: "East", Division: "Atlantic", FullName: "Philadelphia 76ers", Name: "76ers"}
	thunder  = teams.Team{ID: 21, Abbreviation: "OKC", City: "Oklahoma City", Conference: "West", Division: "Northwest", FullName: "Oklahoma City Thunder", Name: "Thunder"}
	// Historical franchise: balldontlie returns these without a city.
	stags = teams.Team{ID: 37, Abbreviation: "CHS", Conference: "East", Division: "", FullName: "Chicago Stags", Name: "Stags"}
)

func fixtureTeams() []teams.Team {
	return []teams.Team{celtics, mavs, nuggets, warriors, lakers, bucks, thunder, sixers, spurs, stags}
}

func intp(v int) *int { return &v }

func fixturePlayers() []players.Player {
	return []players.Player{
		{ID: 15, FirstName: "Giannis", LastName: "Antetokounmpo", Position: "F", Height: "6-11", Weight: "243", JerseyNumber: "34", Country: "Greece", DraftYear: intp(2013), DraftRound: intp(1), DraftNumber: intp(15), Team: bucks},
		{ID: 115, FirstName: "Stephen", LastName: "Curry", Position: "G", Height: "6-2", Weight: "185", JerseyNumber: "30", College: "Davidson", Country: "USA", DraftYear: intp(2009), DraftRound: intp(1), DraftNumber: intp(7), Team: warriors},
		{ID: 132, FirstName: "Anthony", LastName: "Davis", Position: "F-C", Height: "6-10", Weight: "253", JerseyNumber: "3", College: "Kentucky", Country: "USA", DraftYear: intp(2012), DraftRound: intp(1), DraftNumber: intp(1), Team: lakers},
		{ID: 140, FirstName: "Kevin", LastName: "Durant", Position: "F", Height: "6-11", Weight: "240", JerseyNumber: "35", College: "Texas", Country: "USA", DraftYear: intp(2007), DraftRound: intp(1), DraftNumber: intp(2), Team: thunder},
		{ID: 145, FirstName: "Joel", LastName: "Embiid", Position: "C", Height: "7-0", Weight: "280", JerseyNumber: "21", College: "Kansas", Country: "Cameroon", DraftYear: intp(2014), DraftRound: intp(1), DraftNumber: intp(3), Team: sixers},
		{ID: 237, FirstName: "LeBron", LastName: "James", Position: "F", Height: "6-9", Weight: "250", JerseyNumber: "23", Country: "USA", DraftYear: intp(2003), DraftRound: intp(1), DraftNumber: intp(1), Team: lakers},
		{ID: 246, FirstName: "Nikola", LastName: "Jokic", Position: "C", Height: "6-11", Weight: "284", JerseyNumber: "15", Country: "Serbia", DraftYear: intp(2014), DraftRound: intp(2), DraftNumber: intp(41), Team: nuggets},
		{ID: 434, FirstName: "Jayson", LastName: "Tatum", Position: "F", Height: "6-8", Weight: "210", JerseyNumber: "0", College: "Duke", Country: "USA", DraftYear: intp(2017), DraftRound: intp(1), DraftNumber: intp(3), Team: celtics},
		{ID: 666, FirstName: "Jaylen", LastName: "Brown", Position: "G-F", Height: "6-6", Weight: "223", JerseyNumber: "7", College: "California", Country: "USA", DraftYear: intp(2016), DraftRound: intp(1), DraftNumber: intp(3), Team: celtics},
		{ID: 3547, FirstName: "Jamal", LastName: "Murray", Position: "G", Height: "6-4", Weight: "215", JerseyNumber: "27", College: "Kentucky", Country: "Canada", DraftYear: intp(2016), DraftRound: intp(1), DraftNumber: intp(7), Team: nuggets},
		{ID: 3945, FirstName: "Luka", LastName: "Doncic", Position: "G", Height: "6-7", Weight: "230", JerseyNumber: "77", Country: "Slovenia", DraftYear: intp(2018), DraftRound: intp(1), DraftNumber: intp(3), Team: mavs},
		{ID: 17896, FirstName: "Shai", LastName: "Gilgeous-Alexander", Position: "G", Height: "6-6", Weight: "195", JerseyNumber: "2", College: "Kentucky", Country: "Canada", DraftYear: intp(2018), DraftRound: intp(1), DraftNumber: intp(11), Team: thunder},
		{ID: 56677, FirstName: "Victor", LastName: "Wembanyama", Position: "C", Height: "7-4", Weight: "210", JerseyNumber: "1", Country: "France", DraftYear: intp(2023), DraftRound: intp(1), DraftNumber: intp(1), Team: spurs},
		{ID: 56678, FirstName: "Chet", LastName: "Holmgren", Position: "C", Height: "7-1", Weight: "208", JerseyNumber: "7", College: "Gonzaga", Country: "USA", DraftYear: intp(2022), DraftRound: intp(1), DraftNumber: intp(2), Team: thunder},
	}
}
