package questions

// defaultQuestions is the built-in daily form used when no catalog file
// is configured.
var defaultQuestions = []Definition{
	// Identity & visual proof
	{ID: "faceMatch", Label: "Did your face today match the man you want to become?", Type: TypeBoolean, Category: CategoryIdentity},
	{ID: "identityCheck", Label: "Did actions match identity? (Yes/No/Partial)", Type: TypeSelect, Options: []string{"Yes", "Partial", "No"}, Category: CategoryIdentity},
	{ID: "visibleWeakness", Label: "What visible weakness do you notice today?", Type: TypeText, Category: CategoryIdentity},

	// Work & creation
	{ID: "businessWork", Label: "Deep Work / Business (Yes/No)", Type: TypeBoolean, Category: CategoryWork},
	{ID: IDCreationMinutes, Label: "Minutes Created (Building, Writing, Coding)", Type: TypeNumber, Category: CategoryWork},
	{ID: IDConsumptionMinutes, Label: "Minutes Consumed (Social, Videos, Reading)", Type: TypeNumber, Category: CategoryWork},
	{ID: "skillInvested", Label: "Primary Skill: Minutes Invested", Type: TypeNumber, Category: CategoryWork},

	// Decisions
	{ID: "goodDecision", Label: "One GOOD decision made today", Type: TypeText, Category: CategoryDecisions},
	{ID: "badDecision", Label: "One BAD decision made today", Type: TypeText, Category: CategoryDecisions},
	{ID: "decisionEmotion", Label: "Emotion during bad decision", Type: TypeSelect, Options: []string{"Calm", "Rushed", "Emotional", "Bored"}, Category: CategoryDecisions},
	{ID: "thinkingContent", Label: "What did you think deeply about?", Type: TypeText, Category: CategoryDecisions},
	{ID: IDExcuseType, Label: "What excuse tried to appear today?", Type: TypeSelect, Options: []string{"None", "Tired", "Bored", "Distracted", "Emotional"}, Category: CategoryDecisions},

	// Energy & health
	{ID: "energyMorning", Label: "Morning Energy (1-5)", Type: TypeScale, Category: CategoryEnergy},
	{ID: "energyAfternoon", Label: "Afternoon Energy (1-5)", Type: TypeScale, Category: CategoryEnergy},
	{ID: "energyNight", Label: "Night Energy (1-5)", Type: TypeScale, Category: CategoryEnergy},
	{ID: IDNamaz, Label: "Namaz Prayed (0-5)", Type: TypeNumber, Category: CategoryDiscipline},
	{ID: IDExercise, Label: "Exercise Done?", Type: TypeBoolean, Category: CategoryHealth},
	{ID: "water", Label: "Water Intake (Liters)", Type: TypeNumber, Category: CategoryHealth},

	// Money
	{ID: "moneySpent", Label: "Money Spent Today (Estimate)", Type: TypeNumber, Category: CategoryMoney},
	{ID: "spendingCategory", Label: "Primary Spending Category", Type: TypeSelect, Options: []string{"None", "Food", "Transport", "Investment", "Useless"}, Category: CategoryMoney},

	// Shutdown ritual: required before the next day opens
	{ID: "shutdownRespect", Label: "Did I respect my time today?", Type: TypeBoolean, Category: CategoryShutdown},
	{ID: "shutdownStupidity", Label: "Did I avoid obvious stupidity?", Type: TypeBoolean, Category: CategoryShutdown},
	{ID: "shutdownRepeat", Label: "What must not repeat tomorrow?", Type: TypeText, Category: CategoryShutdown},
}

// Default returns the built-in catalog.
func Default() *Catalog {
	c, err := NewCatalog(defaultQuestions)
	if err != nil {
		panic("questions: invalid built-in catalog: " + err.Error())
	}
	return c
}
