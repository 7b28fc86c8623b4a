// schema writes JSON schemas for the campaign data files so editors can
// validate quests.json and mobs_stats.json while they are being written.
//
//	go run ./cmd/schema -out schema
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/invopop/jsonschema"

	"mesoquest/assets"
	"mesoquest/internal/data"
	"mesoquest/internal/quest"
)

func main() {
	var outDir string
	flag.StringVar(&outDir, "out", "", "directory to write the JSON schemas to")
	flag.Parse()

	if outDir == "" {
		fmt.Fprintln(os.Stderr, "-out is required")
		os.Exit(1)
	}

	for name, schema := range buildSchemas() {
		if err := writeSchema(filepath.Join(outDir, name), schema); err != nil {
			fmt.Fprintf(os.Stderr, "failed to write %s: %v\n", name, err)
			os.Exit(1)
		}
	}
}

// schemaFile names the schema for a data file.
func schemaFile(dataFile string) string {
	return dataFile[:len(dataFile)-len(filepath.Ext(dataFile))] + ".schema.json"
}

func buildSchemas() map[string]*jsonschema.Schema {
	reflector := jsonschema.Reflector{
		AllowAdditionalProperties: true,
	}

	quests := reflector.Reflect(new(quest.Database))
	quests.Title = "Quest Database"
	quests.Description = "Quest chain and the maps its quests take place on."

	stats := reflector.Reflect(new([]data.MobStatsDoc))
	stats.Title = "Mob Stats"
	stats.Description = "Per-species combat stats and animation framebooks."

	return map[string]*jsonschema.Schema{
		schemaFile(assets.QuestsFile):   quests,
		schemaFile(assets.MobStatsFile): stats,
	}
}

func writeSchema(outPath string, schema *jsonschema.Schema) error {
	raw, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal schema: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		return fmt.Errorf("create schema directory: %w", err)
	}

	tmpPath := outPath + ".tmp"
	if err := os.WriteFile(tmpPath, append(raw, '\n'), 0o644); err != nil {
		return fmt.Errorf("write temp schema: %w", err)
	}

	if err := os.Rename(tmpPath, outPath); err != nil {
		return fmt.Errorf("replace schema: %w", err)
	}

	return nil
}
