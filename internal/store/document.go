package store

import (
	"fmt"
	"time"

	"talknotes/internal/catalog"
)

// SchemaVersion is the snapshot layout written by this build.
const SchemaVersion = 1

type document struct {
	SchemaVersion int              `json:"schema_version"`
	SavedAt       time.Time        `json:"saved_at"`
	People        []personRecord   `json:"people"`
	Index         map[string][]int `json:"index"`
}

type personRecord struct {
	ID         int          `json:"id"`
	Name       string       `json:"name"`
	FolderName string       `json:"folder_name"`
	Role       string       `json:"role,omitempty"`
	PastRoles  []string     `json:"past_roles,omitempty"`
	Talks      []talkRecord `json:"talks,omitempty"`
}

type talkRecord struct {
	ID    int    `json:"id"`
	Date  string `json:"date"`
	Title string `json:"title,omitempty"`
	Venue string `json:"venue,omitempty"`
}

func encodeGraph(g *catalog.Graph, savedAt time.Time) document {
	doc := document{
		SchemaVersion: SchemaVersion,
		SavedAt:       savedAt.UTC(),
		People:        make([]personRecord, 0, len(g.People)),
		Index:         g.Index,
	}
	if doc.Index == nil {
		doc.Index = map[string][]int{}
	}
	for _, p := range g.People {
		rec := personRecord{
			ID:         p.ID,
			Name:       p.Name,
			FolderName: p.FolderName,
			Role:       p.Role,
			PastRoles:  p.PastRoles,
		}
		for _, t := range p.Talks {
			rec.Talks = append(rec.Talks, talkRecord{
				ID:    t.ID,
				Date:  t.DateString(),
				Title: t.Title,
				Venue: t.Venue,
			})
		}
		doc.People = append(doc.People, rec)
	}
	return doc
}

func decodeGraph(doc document) (*catalog.Graph, error) {
	g := catalog.New()
	for _, rec := range doc.People {
		p := &catalog.Person{
			ID:         rec.ID,
			Name:       rec.Name,
			FolderName: rec.FolderName,
			Role:       rec.Role,
			PastRoles:  rec.PastRoles,
		}
		for _, tr := range rec.Talks {
			date, err := time.Parse(catalog.DateLayout, tr.Date)
			if err != nil {
				return nil, fmt.Errorf("person %d talk %d: %w", rec.ID, tr.ID, err)
			}
			p.Talks = append(p.Talks, &catalog.Talk{
				ID:    tr.ID,
				Date:  date,
				Title: tr.Title,
				Venue: tr.Venue,
			})
		}
		g.People = append(g.People, p)
	}
	for token, ids := range doc.Index {
		g.Index[token] = ids
	}
	if err := g.Validate(); err != nil {
		return nil, err
	}
	return g, nil
}
