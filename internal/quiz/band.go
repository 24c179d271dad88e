package quiz

// The three banding schemes below use different thresholds on purpose:
// progress badges, the end-of-quiz score ring and the end-of-quiz analysis
// text each keep their own tiers.

// Badge is the color tier of a progress figure.
type Badge int

const (
	BadgeLow  Badge = iota // below 40
	BadgeMid               // 40 to 79
	BadgeHigh              // 80 and above
)

// BadgeFor returns the badge tier for a progress percentage.
func BadgeFor(percent int) Badge {
	switch {
	case percent >= 80:
		return BadgeHigh
	case percent >= 40:
		return BadgeMid
	default:
		return BadgeLow
	}
}

// Ring is the color tier of the final score.
type Ring int

const (
	RingRed Ring = iota
	RingOrange
	RingYellow
	RingGreen
)

// RingFor returns the score ring tier for a score percentage.
func RingFor(score int) Ring {
	switch {
	case score >= 80:
		return RingGreen
	case score >= 60:
		return RingYellow
	case score >= 40:
		return RingOrange
	default:
		return RingRed
	}
}

// Analysis returns the performance text for a score percentage.
func Analysis(score int) string {
	switch {
	case score >= 90:
		return "Excelente! Você domina este conteúdo."
	case score >= 80:
		return "Muito bom! Você tem um bom conhecimento deste conteúdo."
	case score >= 70:
		return "Bom! Você está no caminho certo, mas ainda pode melhorar."
	case score >= 60:
		return "Regular. Recomendamos revisar este conteúdo novamente."
	case score >= 40:
		return "Atenção! Você precisa estudar mais este conteúdo."
	default:
		return "Você precisa dedicar mais tempo ao estudo deste conteúdo."
	}
}
