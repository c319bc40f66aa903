package model

// QuizQuestion is one entry of the fixed eligibility quiz. The question set is
// static reference data; only the resulting score is ever persisted.
// swagger:model QuizQuestion
type QuizQuestion struct {
	ID            int      `json:"id"`
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer string   `json:"-"`
	Explanation   string   `json:"explanation,omitempty"`
}

// PassScore is the minimum quiz score that gates entry into the application
// workflow.
const PassScore = 4

var QuizQuestions = []QuizQuestion{
	{
		ID:            1,
		Question:      "Which state in Nigeria is the scholarship program for?",
		Options:       []string{"Lagos State", "Plateau State", "Rivers State", "Kano State"},
		CorrectAnswer: "Plateau State",
		Explanation:   "This scholarship is specifically for indigenes of Plateau State.",
	},
	{
		ID:            2,
		Question:      "Which of the following is NOT a Local Government Area in Plateau State?",
		Options:       []string{"Jos North", "Wase", "Barkin Ladi", "Eti-Osa"},
		CorrectAnswer: "Eti-Osa",
		Explanation:   "Eti-Osa is a Local Government Area in Lagos State, not Plateau State.",
	},
	{
		ID:            3,
		Question:      "What document is required to prove you are an indigene of Plateau State?",
		Options:       []string{"Birth Certificate", "National ID Card", "Indigene Form", "International Passport"},
		CorrectAnswer: "Indigene Form",
		Explanation:   "The Indigene Form is the official document that proves you are an indigene of Plateau State.",
	},
	{
		ID:            4,
		Question:      "Which of these is required for a complete scholarship application?",
		Options:       []string{"Only Admission Letter", "Only Indigene Form", "Only Passport Photograph", "All of the above"},
		CorrectAnswer: "All of the above",
		Explanation:   "A complete application requires the Indigene Form, Admission Letter, and Passport Photograph.",
	},
	{
		ID:            5,
		Question:      "Who is eligible for the Plateau State Scholarship?",
		Options:       []string{"Any Nigerian student", "Only students studying outside Nigeria", "Students who are indigenes of Plateau State", "Only postgraduate students"},
		CorrectAnswer: "Students who are indigenes of Plateau State",
		Explanation:   "The scholarship is specifically for students who are indigenes of Plateau State.",
	},
}
