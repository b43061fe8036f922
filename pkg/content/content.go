package content

import (
	_ "embed"
	"errors"
	"fmt"
	"math/rand/v2"
)

//go:embed about.md
var about string

// About is the about page in markdown.
func About() string { return about }

// Quote is a motivational quote.
type Quote struct {
	Text   string `json:"text"`
	Author string `json:"author"`
}

func (q Quote) String() string {
	return fmt.Sprintf("%q - %s", q.Text, q.Author)
}

// Book is a recommended read.
type Book struct {
	Title  string `json:"title"`
	Author string `json:"author"`
}

// Video is a recommended talk.
type Video struct {
	URL string `json:"url"`
}

var (
	prompts = []string{
		"What did you learn today?",
		"How did you overcome a challenge?",
		"What are you grateful for?",
		"What will you improve tomorrow?",
	}

	quotes = []Quote{
		{Text: "The only limit is your mind.", Author: "Unknown"},
		{Text: "Growth begins at the end of your comfort zone.", Author: "Neale Donald Walsch"},
		{Text: "Success is stumbling from failure to failure with no loss of enthusiasm.", Author: "Winston Churchill"},
	}

	books = []Book{
		{Title: "Mindset: The New Psychology of Success", Author: "Carol Dweck"},
		{Title: "Grit: The Power of Passion and Perseverance", Author: "Angela Duckworth"},
		{Title: "Atomic Habits", Author: "James Clear"},
	}

	videos = []Video{
		{URL: "https://youtu.be/Yl9TVbAal5s"},
		{URL: "https://youtu.be/KUWn_TJTrnU"},
	}
)

// Prompts lists the reflection prompts.
func Prompts() []string { return append([]string(nil), prompts...) }

// Quotes lists the motivational quotes.
func Quotes() []Quote { return append([]Quote(nil), quotes...) }

// Books lists the recommended books.
func Books() []Book { return append([]Book(nil), books...) }

// Videos lists the recommended videos.
func Videos() []Video { return append([]Video(nil), videos...) }

// Picker chooses prompts and quotes at random.
type Picker struct {
	// IntN returns a value in [0, n). Nil uses math/rand/v2.
	IntN func(n int) int
}

func (p Picker) intN(n int) int {
	if p.IntN == nil {
		return rand.IntN(n)
	}
	return p.IntN(n)
}

// Prompt picks a reflection prompt.
func (p Picker) Prompt() string {
	return prompts[p.intN(len(prompts))]
}

// Quote picks a motivational quote.
func (p Picker) Quote() Quote {
	return quotes[p.intN(len(quotes))]
}

const (
	MinScore = 1
	MaxScore = 5
)

// ErrScoreRange is returned for self-assessment scores outside 1..5.
var ErrScoreRange = fmt.Errorf("content: score must be between %d and %d", MinScore, MaxScore)

// Assessment is a mindset self-assessment, 1 being fixed and 5 growth.
type Assessment struct {
	Score int `json:"score"`
}

// Assess validates score.
func Assess(score int) (Assessment, error) {
	if score < MinScore || score > MaxScore {
		return Assessment{}, fmt.Errorf("%w: got %d", ErrScoreRange, score)
	}
	return Assessment{Score: score}, nil
}

func (a Assessment) String() string {
	return fmt.Sprintf("Your growth mindset score: %d/%d", a.Score, MaxScore)
}

// IsScoreRange reports whether err came from an out of range score.
func IsScoreRange(err error) bool { return errors.Is(err, ErrScoreRange) }
