package main

import (
	"encoding/json"
	"fmt"
	"os"
)

func readConfig() (*Config, error) {
	// Resolve the config path here, after any .env file has been loaded
	configFile := getEnv("CONFIG_FILE", "config.json")

	// Get practitioner map and Nookal endpoint
	data, err := os.ReadFile(configFile)
	if err != nil {
		return nil, fmt.Errorf("error reading config file:%s", err)
	}

	// Parse JSON data
	var config Config
	err = json.Unmarshal(data, &config)
	if err != nil {
		return nil, fmt.Errorf("error parsing JSON:%s", err)
	}

	return &config, nil
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
