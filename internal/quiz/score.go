package quiz

import (
	"fmt"

	"github.com/abhisek/quizdeck/internal/progress"
)

// roundRatio returns round(100*num/den) with halves rounded up, in integer
// arithmetic. den must be positive.
func roundRatio(num, den int) int {
	return (200*num + den) / (2 * den)
}

// ScorePercentage returns round(100*correct/(correct+incorrect)), or 0 when
// nothing was answered.
func ScorePercentage(correct, incorrect int) int {
	total := correct + incorrect
	if total <= 0 {
		return 0
	}
	return roundRatio(correct, total)
}

// ModuleProgress returns the share of the module's questions that were
// answered correctly at least once, as a rounded percentage. Repeated
// attempts do not count twice and wrong attempts never lower it.
func ModuleProgress(module string, questionCount int, entries map[string]progress.QuestionProgress) int {
	if questionCount <= 0 {
		return 0
	}
	mastered := 0
	for i := 0; i < questionCount; i++ {
		if entries[progress.QuestionID(module, i)].Correct > 0 {
			mastered++
		}
	}
	return roundRatio(mastered, questionCount)
}

// OverallProgress is the rounded unweighted mean of per-module progress.
// Every module counts once regardless of its size.
func OverallProgress(moduleProgress []int) int {
	n := len(moduleProgress)
	if n == 0 {
		return 0
	}
	sum := 0
	for _, p := range moduleProgress {
		sum += p
	}
	return (2*sum + n) / (2 * n)
}

// FormatElapsed renders seconds as MM:SS. Minutes are not wrapped into
// hours, so 4503 seconds is "75:03".
func FormatElapsed(secs int) string {
	if secs < 0 {
		secs = 0
	}
	return fmt.Sprintf("%02d:%02d", secs/60, secs%60)
}
