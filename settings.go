package main

import (
	"encoding/json"
	"log"

	"github.com/quasilyte/gdata"
)

const settingsKey = "settings"

// Settings are the player preferences kept between runs.
type Settings struct {
	Sound      bool    `json:"sound"`
	Volume     float64 `json:"volume"`
	FastRender bool    `json:"fast_render"`
}

func defaultSettings() Settings {
	return Settings{Sound: true, Volume: 0.8, FastRender: true}
}

// settingsStore persists Settings with gdata. A nil manager keeps
// everything in memory.
type settingsStore struct {
	m *gdata.Manager
}

func openSettings() *settingsStore {
	m, err := gdata.Open(gdata.Config{AppName: "platformer"})
	if err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
		return &settingsStore{}
	}
	return &settingsStore{m: m}
}

func (s *settingsStore) Load() Settings {
	out := defaultSettings()
	if s.m == nil {
		return out
	}
	data, err := s.m.LoadItem(settingsKey)
	if err != nil {
		log.Printf("Warning: Could not load settings: %v", err)
		return out
	}
	if data == nil {
		return out
	}
	if err := json.Unmarshal(data, &out); err != nil {
		log.Printf("Warning: Could not parse saved settings: %v", err)
		return defaultSettings()
	}
	return out
}

func (s *settingsStore) Save(v Settings) {
	if s.m == nil {
		return
	}
	data, err := json.Marshal(v)
	if err != nil {
		log.Printf("Warning: Could not serialize settings: %v", err)
		return
	}
	if err := s.m.SaveItem(settingsKey, data); err != nil {
		log.Printf("Warning: Could not save settings: %v", err)
	}
}
