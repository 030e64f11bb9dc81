package models

// ATS and result codes used in GameOutcome
const (
	ResultWin  = "W"
	ResultLoss = "L"
	ResultPush = "P"
)

// ATSRecord is a team's record against the spread
type ATSRecord struct {
	Wins   int `json:"wins" validate:"gte=0"`
	Losses int `json:"losses" validate:"gte=0"`
	Pushes int `json:"pushes" validate:"gte=0"`
}

// OverUnderRecord is the over/under record of a team's games
type OverUnderRecord struct {
	Overs  int `json:"overs" validate:"gte=0"`
	Unders int `json:"unders" validate:"gte=0"`
	Pushes int `json:"pushes" validate:"gte=0"`
}

// GameOutcome is one graded historical game from a team's perspective
type GameOutcome struct {
	Week         int     `json:"week"`
	Opponent     string  `json:"opponent"`
	Result       string  `json:"result" validate:"oneof=W L P"`
	ATSResult    string  `json:"atsResult" validate:"oneof=W L P"`
	Spread       float64 `json:"spread"`
	ActualMargin float64 `json:"actualMargin"`
}

// TeamPerformance is the historical summary supplied for a single team
type TeamPerformance struct {
	ATSRecord       ATSRecord       `json:"atsRecord"`
	OverUnderRecord OverUnderRecord `json:"overUnderRecord"`
	Last5Games      []GameOutcome   `json:"last5Games" validate:"max=5,dive"`
}

// WeeklyTrend holds league-wide betting rates for one week
type WeeklyTrend struct {
	Week            int     `json:"week"`
	HomeWinRate     float64 `json:"homeWinRate" validate:"gte=0,lte=1"`
	FavoriteWinRate float64 `json:"favoriteWinRate" validate:"gte=0,lte=1"`
	OverRate        float64 `json:"overRate" validate:"gte=0,lte=1"`
}
