// Command seed loads survey data into the database from a JSON file
// and optionally provisions a staff account. Loading is idempotent:
// rows that already exist are left alone, so the file can be re-run
// after edits.
//
// File shape:
//
//	{
//	  "dialect_data": {
//	    "chittagonian": [{"original": "...", "generated": "..."}]
//	  },
//	  "plausibility_data": [
//	    {"question": "...", "correct": "...", "wrong_1": "...", "wrong_2": "...", "wrong_3": "..."}
//	  ]
//	}
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/banglanlp/dialect-eval-backend/internal/app"
	"github.com/banglanlp/dialect-eval-backend/internal/domain"
)

type dialectSample struct {
	Original  string `json:"original"`
	Generated string `json:"generated"`
}

type plausibilitySample struct {
	Question string `json:"question"`
	Correct  string `json:"correct"`
	Wrong1   string `json:"wrong_1"`
	Wrong2   string `json:"wrong_2"`
	Wrong3   string `json:"wrong_3"`
}

type seedFile struct {
	DialectData      map[string][]dialectSample `json:"dialect_data"`
	PlausibilityData []plausibilitySample       `json:"plausibility_data"`
}

func main() {
	var dataPath string
	var staffEmail string
	var staffPassword string
	flag.StringVar(&dataPath, "data", "", "path to the seed JSON file")
	flag.StringVar(&staffEmail, "staff-email", "", "create a staff account with this email")
	flag.StringVar(&staffPassword, "staff-password", "", "password for the staff account")
	flag.Parse()

	if dataPath == "" && staffEmail == "" {
		fmt.Println("nothing to do: pass -data and/or -staff-email")
		os.Exit(1)
	}

	application, err := app.New()
	if err != nil {
		fmt.Printf("init app: %v\n", err)
		os.Exit(1)
	}
	defer application.Close()

	ctx := context.Background()

	if dataPath != "" {
		if err := loadSeedFile(ctx, application, dataPath); err != nil {
			fmt.Printf("load seed data: %v\n", err)
			os.Exit(1)
		}
	}

	if staffEmail != "" {
		if staffPassword == "" {
			fmt.Println("-staff-password is required with -staff-email")
			os.Exit(1)
		}
		user, err := application.Services.StaffAuth.CreateStaff(ctx, staffEmail, staffPassword)
		if err != nil {
			fmt.Printf("create staff account: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("staff account ready: %s (%s)\n", user.Email, user.ID)
	}
}

func loadSeedFile(ctx context.Context, application *app.App, path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	var file seedFile
	if err := json.Unmarshal(raw, &file); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}

	db := application.DB.WithContext(ctx)

	totalPairs := 0
	for dialect, samples := range file.DialectData {
		dialect = strings.TrimSpace(strings.ToLower(dialect))
		if dialect == "" {
			continue
		}
		for _, sample := range samples {
			pair := domain.DialectPair{
				DialectName:            dialect,
				OriginalStandardText:   sample.Original,
				AIGeneratedDialectText: sample.Generated,
			}
			err := db.Where(map[string]any{
				"dialect_name":              pair.DialectName,
				"original_standard_text":    pair.OriginalStandardText,
				"ai_generated_dialect_text": pair.AIGeneratedDialectText,
			}).FirstOrCreate(&pair).Error
			if err != nil {
				return fmt.Errorf("dialect pair (%s): %w", dialect, err)
			}
		}
		totalPairs += len(samples)
		fmt.Printf("loaded %d samples for %s\n", len(samples), dialect)
	}

	for _, sample := range file.PlausibilityData {
		item := domain.PlausibilityItem{
			Question:      sample.Question,
			CorrectAnswer: sample.Correct,
			WrongOption1:  sample.Wrong1,
			WrongOption2:  sample.Wrong2,
			WrongOption3:  sample.Wrong3,
		}
		err := db.Where(map[string]any{
			"question":       item.Question,
			"correct_answer": item.CorrectAnswer,
			"wrong_option_1": item.WrongOption1,
			"wrong_option_2": item.WrongOption2,
			"wrong_option_3": item.WrongOption3,
		}).FirstOrCreate(&item).Error
		if err != nil {
			return fmt.Errorf("plausibility item: %w", err)
		}
	}

	fmt.Printf("loaded %d dialect pairs and %d plausibility questions\n", totalPairs, len(file.PlausibilityData))
	return nil
}
