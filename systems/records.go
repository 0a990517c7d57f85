package systems

import (
	"encoding/json"
	"log"

	"github.com/automoto/duel/components"
	"github.com/quasilyte/gdata"
)

const recordKey = "record"

// RecordStore persists the win/loss/draw tally between runs.
type RecordStore interface {
	LoadRecord() (components.RecordData, error)
	SaveRecord(components.RecordData) error
}

// GdataRecords stores the record with gdata under the game's app name.
type GdataRecords struct {
	manager *gdata.Manager
}

// OpenRecords initializes the gdata manager for record storage.
func OpenRecords(appName string) (*GdataRecords, error) {
	m, err := gdata.Open(gdata.Config{
		AppName: appName,
	})
	if err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
		return nil, err
	}
	return &GdataRecords{manager: m}, nil
}

// LoadRecord returns the saved record, or a zero record if nothing has been saved yet.
func (g *GdataRecords) LoadRecord() (components.RecordData, error) {
	var record components.RecordData
	if g == nil || g.manager == nil {
		return record, nil
	}

	data, err := g.manager.LoadItem(recordKey)
	if err != nil {
		log.Printf("Warning: Could not load match record: %v", err)
		return record, err
	}
	if len(data) == 0 {
		return record, nil
	}

	if err := json.Unmarshal(data, &record); err != nil {
		log.Printf("Warning: Could not parse saved match record: %v", err)
		return components.RecordData{}, err
	}
	return record, nil
}

// SaveRecord writes the record to disk.
func (g *GdataRecords) SaveRecord(record components.RecordData) error {
	if g == nil || g.manager == nil {
		return nil
	}

	data, err := json.Marshal(record)
	if err != nil {
		log.Printf("Warning: Could not serialize match record: %v", err)
		return err
	}

	if err := g.manager.SaveItem(recordKey, data); err != nil {
		log.Printf("Warning: Could not save match record: %v", err)
		return err
	}
	return nil
}

// MemoryRecords keeps the record in memory. Used when persistence is unavailable.
type MemoryRecords struct {
	Record components.RecordData
	Saves  int
}

func (m *MemoryRecords) LoadRecord() (components.RecordData, error) {
	return m.Record, nil
}

func (m *MemoryRecords) SaveRecord(record components.RecordData) error {
	m.Record = record
	m.Saves++
	return nil
}
