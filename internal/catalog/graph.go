package catalog

import (
	"fmt"

	"talknotes/internal/textutil"
)

// Graph is the root of the persisted metadata: every person plus the token index.
type Graph struct {
	People []*Person
	Index  map[string][]int
}

// New returns an empty graph.
func New() *Graph {
	return &Graph{Index: make(map[string][]int)}
}

// AddPerson registers a new person and indexes every whitespace token of the
// name. The name is stored as given; callers lowercase it first.
func (g *Graph) AddPerson(name string) *Person {
	if g.Index == nil {
		g.Index = make(map[string][]int)
	}
	person := &Person{
		ID:         len(g.People),
		Name:       name,
		FolderName: textutil.FolderName(name),
	}
	g.People = append(g.People, person)
	for _, token := range textutil.Tokens(name) {
		g.Index[token] = append(g.Index[token], person.ID)
	}
	return person
}

// Search returns the IDs of people indexed under any of tokens. IDs are
// reported once, in the order they are first reached walking tokens in order.
func (g *Graph) Search(tokens []string) []int {
	var matched []int
	seen := make(map[int]struct{})
	for _, token := range tokens {
		for _, id := range g.Index[token] {
			if _, ok := seen[id]; ok {
				continue
			}
			seen[id] = struct{}{}
			matched = append(matched, id)
		}
	}
	return matched
}

// Person looks up a person by ID.
func (g *Graph) Person(id int) (*Person, error) {
	if id < 0 || id >= len(g.People) {
		return nil, &NotFoundError{PersonID: id}
	}
	return g.People[id], nil
}

// Talk looks up a talk by its owner and local ID.
func (g *Graph) Talk(personID, talkID int) (*Person, *Talk, error) {
	person, err := g.Person(personID)
	if err != nil {
		return nil, nil, err
	}
	if talkID < 0 || talkID >= len(person.Talks) {
		return person, nil, &NotFoundError{
			PersonID:   personID,
			PersonName: person.DisplayName(),
			TalkID:     talkID,
			Talk:       true,
		}
	}
	return person, person.Talks[talkID], nil
}

// Validate checks the positional ID invariants and that every index entry
// refers to an existing person.
func (g *Graph) Validate() error {
	for i, person := range g.People {
		if person == nil {
			return fmt.Errorf("person %d is missing", i)
		}
		if person.ID != i {
			return fmt.Errorf("person at position %d has id %d", i, person.ID)
		}
		for j, talk := range person.Talks {
			if talk == nil {
				return fmt.Errorf("person %d: talk %d is missing", i, j)
			}
			if talk.ID != j {
				return fmt.Errorf("person %d: talk at position %d has id %d", i, j, talk.ID)
			}
		}
	}
	for token, ids := range g.Index {
		for _, id := range ids {
			if id < 0 || id >= len(g.People) {
				return fmt.Errorf("index token %q refers to unknown person %d", token, id)
			}
		}
	}
	return nil
}
