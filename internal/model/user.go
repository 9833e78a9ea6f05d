package model

// swagger:model User
type User struct {
	BaseModel
	Username string `gorm:"size:50;uniqueIndex;not null" json:"username"`
	Email    string `gorm:"size:100;uniqueIndex;not null" json:"email"`
	// Empty for accounts created through Google sign-in.
	Password    string `gorm:"size:100" json:"-"`
	GoogleID    string `gorm:"size:64;index" json:"-"`
	Avatar      string `gorm:"size:255" json:"avatar"`
	TotalScore  int    `gorm:"default:0" json:"totalScore"`
	GamesPlayed int    `gorm:"default:0" json:"gamesPlayed"`
	GamesWon    int    `gorm:"default:0" json:"gamesWon"`
}

func (User) TableName() string {
	return "users"
}

// WinRate returns the percentage of games won, 0 when the user has
// never finished a game.
func (u *User) WinRate() float64 {
	if u.GamesPlayed == 0 {
		return 0
	}
	return float64(u.GamesWon) / float64(u.GamesPlayed) * 100
}
