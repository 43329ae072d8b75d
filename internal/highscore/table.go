package highscore

import (
	"encoding/json"
	"sort"
)

// Capacity is the total number of names a table keeps.
const Capacity = 10

type Entry struct {
	Score int    `json:"score"`
	Name  string `json:"name"`
}

// Table maps a score to the names that reached it, oldest first. Size
// counts names, not scores.
type Table struct {
	names map[int][]string
}

func NewTable() *Table {
	return &Table{names: map[int][]string{}}
}

func (t *Table) Size() int {
	n := 0
	for _, list := range t.names {
		n += len(list)
	}
	return n
}

// Lowest returns the smallest recorded score.
func (t *Table) Lowest() (int, bool) {
	keys := t.keys()
	if len(keys) == 0 {
		return 0, false
	}
	return keys[0], true
}

// Qualifies reports whether score would make it into the table.
func (t *Table) Qualifies(score int) bool {
	if t.Size() < Capacity {
		return true
	}
	lowest, _ := t.Lowest()
	return score > lowest
}

// Add records name at score, then drops the oldest name at the lowest
// score until the table is back within Capacity. It does not check
// Qualifies first.
func (t *Table) Add(score int, name string) {
	t.names[score] = append(t.names[score], name)
	for t.Size() > Capacity {
		lowest, _ := t.Lowest()
		if list := t.names[lowest]; len(list) > 1 {
			t.names[lowest] = list[1:]
		} else {
			delete(t.names, lowest)
		}
	}
}

// Entries lists the table best score first; names sharing a score keep
// their insertion order.
func (t *Table) Entries() []Entry {
	keys := t.keys()
	out := make([]Entry, 0, t.Size())
	for k := len(keys) - 1; k >= 0; k-- {
		for _, name := range t.names[keys[k]] {
			out = append(out, Entry{Score: keys[k], Name: name})
		}
	}
	return out
}

func (t *Table) keys() []int {
	keys := make([]int, 0, len(t.names))
	for k := range t.names {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	return keys
}

type record struct {
	Score int      `json:"score"`
	Names []string `json:"names"`
}

// MarshalJSON writes the score -> names structure as a list ordered by
// descending score.
func (t *Table) MarshalJSON() ([]byte, error) {
	keys := t.keys()
	out := make([]record, 0, len(keys))
	for k := len(keys) - 1; k >= 0; k-- {
		out = append(out, record{Score: keys[k], Names: t.names[keys[k]]})
	}
	return json.Marshal(out)
}

func (t *Table) UnmarshalJSON(data []byte) error {
	var in []record
	if err := json.Unmarshal(data, &in); err != nil {
		return err
	}
	t.names = map[int][]string{}
	for _, r := range in {
		for _, name := range r.Names {
			t.Add(r.Score, name)
		}
	}
	return nil
}
