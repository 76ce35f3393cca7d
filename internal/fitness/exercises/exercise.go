package exercises

import "time"

var MuscleGroup = struct {
	Chest     string
	Back      string
	Legs      string
	Shoulders string
	Arms      string
	Core      string
	FullBody  string
	Cardio    string
}{
	Chest:     "chest",
	Back:      "back",
	Legs:      "legs",
	Shoulders: "shoulders",
	Arms:      "arms",
	Core:      "core",
	FullBody:  "full_body",
	Cardio:    "cardio",
}

var MuscleGroups = []string{
	MuscleGroup.Chest,
	MuscleGroup.Back,
	MuscleGroup.Legs,
	MuscleGroup.Shoulders,
	MuscleGroup.Arms,
	MuscleGroup.Core,
	MuscleGroup.FullBody,
	MuscleGroup.Cardio,
}

var Category = struct {
	Strength    string
	Cardio      string
	Mobility    string
	Flexibility string
}{
	Strength:    "strength",
	Cardio:      "cardio",
	Mobility:    "mobility",
	Flexibility: "flexibility",
}

var Categories = []string{
	Category.Strength,
	Category.Cardio,
	Category.Mobility,
	Category.Flexibility,
}

// ExerciseType is a catalog entry, referenced by workout sets through its ID.
type ExerciseType struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	MuscleGroup string    `json:"muscleGroup"`
	Category    string    `json:"category"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
}
