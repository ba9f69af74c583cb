package domain

// Hint describes the next logical deduction for the UI.
type Hint struct {
	Message   string    `json:"message,omitempty"`
	Cells     []string  `json:"cells,omitempty"`
	Digits    []int     `json:"digits,omitempty"`
	Technique Technique `json:"technique"`
}

// Puzzle is a generated grid with metadata. Checked stays false: generated
// puzzles are not verified to have a unique solution.
type Puzzle struct {
	ID         string     `json:"id,omitempty"`
	Seed       int64      `json:"seed,omitempty"`
	Difficulty Difficulty `json:"difficulty"`
	Grid       string     `json:"grid"`
	Diagonal   bool       `json:"diagonal,omitempty"`
	Checked    bool       `json:"checked"`
	CreatedAt  int64      `json:"createdAt,omitempty"`
	Name       string     `json:"name,omitempty"`
}

// SolveRecord is a persisted solve: the input, the outcome, and the
// assignment trace frames for the visualizer.
type SolveRecord struct {
	ID         string     `json:"id"`
	Grid       string     `json:"grid"`
	Diagonal   bool       `json:"diagonal,omitempty"`
	Solution   string     `json:"solution"`
	Nodes      int        `json:"nodes,omitempty"`
	DurationMs int64      `json:"durationMs,omitempty"`
	Trace      [][]string `json:"trace,omitempty"`
	CreatedAt  int64      `json:"createdAt"`
}

// RecordMeta is a lightweight listing entry.
type RecordMeta struct {
	ID        string `json:"id"`
	Grid      string `json:"grid"`
	Diagonal  bool   `json:"diagonal,omitempty"`
	CreatedAt int64  `json:"createdAt"`
}
