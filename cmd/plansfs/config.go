package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type document struct {
	Name    string `yaml:"name"`
	Content string `yaml:"content"`
}

type scenario struct {
	Plans []document `yaml:"plans"`
}

func loadScenario(path string) (*scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scenario: %w", err)
	}

	var s scenario
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parse scenario: %w", err)
	}
	if len(s.Plans) == 0 {
		return nil, fmt.Errorf("scenario %s lists no plans", path)
	}
	return &s, nil
}

func defaultScenario() *scenario {
	return &scenario{
		Plans: []document{
			{
				Name:    "demo.md",
				Content: "# Demo Plan\n\nWritten through the virtual layer.\n",
			},
		},
	}
}
