package model

type QuizCategory string

const (
	CategoryGeneralKnowledge QuizCategory = "General Knowledge"
	CategoryScience          QuizCategory = "Science"
	CategoryHistory          QuizCategory = "History"
	CategoryGeography        QuizCategory = "Geography"
	CategorySports           QuizCategory = "Sports"
	CategoryEntertainment    QuizCategory = "Entertainment"
	CategoryTechnology       QuizCategory = "Technology"
	CategoryMathematics      QuizCategory = "Mathematics"
	CategoryOther            QuizCategory = "Other"
)

func (c QuizCategory) Valid() bool {
	switch c {
	case CategoryGeneralKnowledge, CategoryScience, CategoryHistory,
		CategoryGeography, CategorySports, CategoryEntertainment,
		CategoryTechnology, CategoryMathematics, CategoryOther:
		return true
	}
	return false
}

type QuizDifficulty string

const (
	DifficultyEasy   QuizDifficulty = "Easy"
	DifficultyMedium QuizDifficulty = "Medium"
	DifficultyHard   QuizDifficulty = "Hard"
)

func (d QuizDifficulty) Valid() bool {
	switch d {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return true
	}
	return false
}

// swagger:model Quiz
type Quiz struct {
	BaseModel
	Title       string         `gorm:"size:200;not null" json:"title"`
	Description string         `gorm:"size:1000" json:"description"`
	Category    QuizCategory   `gorm:"size:50;not null;index" json:"category"`
	Difficulty  QuizDifficulty `gorm:"size:20;not null;index" json:"difficulty"`
	Questions   []Question     `gorm:"constraint:OnDelete:CASCADE" json:"questions"`
	CreatedByID uint           `gorm:"index;not null" json:"createdById"`
	CreatedBy   *User          `json:"createdBy,omitempty"`
	IsPublic    bool           `gorm:"default:true" json:"isPublic"`
	TimesPlayed int            `gorm:"default:0" json:"timesPlayed"`
}

func (Quiz) TableName() string {
	return "quizzes"
}

// swagger:model Question
type Question struct {
	BaseModel
	QuizID uint   `gorm:"index;not null" json:"quizId"`
	Text   string `gorm:"size:1000;not null" json:"question"`
	// Always exactly four options.
	Options       []string `gorm:"serializer:json;not null" json:"options"`
	CorrectAnswer int      `gorm:"not null" json:"correctAnswer"`
	Points        int      `gorm:"default:10" json:"points"`
	TimeLimit     int      `gorm:"default:30" json:"timeLimit"` // seconds
	Order         int      `gorm:"not null" json:"order"`
}

func (Question) TableName() string {
	return "questions"
}
