package oddsmath

// Overround returns the combined implied probability of a two-way moneyline minus one.
// -110/-110 → 0.0476
func Overround(homeML, awayML int) (float64, error) {
	home, err := ImpliedProbability(homeML)
	if err != nil {
		return 0, err
	}
	away, err := ImpliedProbability(awayML)
	if err != nil {
		return 0, err
	}
	return home + away - 1.0, nil
}

// NoVigProbabilities removes the book margin from a two-way moneyline using
// the multiplicative method, so the returned probabilities sum to 1.
func NoVigProbabilities(homeML, awayML int) (home, away float64, err error) {
	homeProb, err := ImpliedProbability(homeML)
	if err != nil {
		return 0, 0, err
	}
	awayProb, err := ImpliedProbability(awayML)
	if err != nil {
		return 0, 0, err
	}

	total := homeProb + awayProb
	if total <= 1.0 {
		return 0, 0, NewDomainError("no-vig probabilities", total, "no overround in market")
	}

	return homeProb / total, awayProb / total, nil
}
