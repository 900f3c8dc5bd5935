package component

// Input is one tick of player intent, collected by whichever frontend runs.
type Input struct {
	Left, Right bool
	Fire        bool
}
