// Package database seeds the in-memory inventory with reference data.
// Theatres and shows come from CSV files at startup, mirroring the
// fixture data the platform is provisioned with; when the files are
// missing a small built-in sample keeps the service usable.
package database

import (
	"encoding/csv"
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/iliyamo/show-booking/internal/model"
	"github.com/iliyamo/show-booking/internal/repository"
)

// Seed loads theatres and shows into the repository.  Each file is a
// CSV with a header row: theatres are id,name,location and shows are
// id,theatre_id,title,price,seats_available.  A missing file falls
// back to the built-in sample; a malformed row aborts the seed so a
// broken fixture is caught at startup, not at booking time.
func Seed(shows *repository.ShowRepo, theatresPath, showsPath string) error {
	if err := seedTheatres(shows, theatresPath); err != nil {
		return err
	}
	return seedShows(shows, showsPath)
}

func seedTheatres(repo *repository.ShowRepo, path string) error {
	rows, err := readCSV(path)
	if err != nil {
		if os.IsNotExist(err) {
			log.Printf("seed: %s not found, using sample theatres", path)
			for _, t := range sampleTheatres {
				repo.AddTheatre(t)
			}
			return nil
		}
		return fmt.Errorf("read theatres %s: %w", path, err)
	}
	for i, rec := range rows {
		if len(rec) < 3 {
			return fmt.Errorf("theatres %s row %d: want 3 columns, got %d", path, i+2, len(rec))
		}
		id, err := strconv.ParseInt(rec[0], 10, 64)
		if err != nil {
			return fmt.Errorf("theatres %s row %d: bad id %q", path, i+2, rec[0])
		}
		repo.AddTheatre(model.Theatre{ID: id, Name: rec[1], Location: rec[2]})
	}
	return nil
}

func seedShows(repo *repository.ShowRepo, path string) error {
	rows, err := readCSV(path)
	if err != nil {
		if os.IsNotExist(err) {
			log.Printf("seed: %s not found, using sample shows", path)
			for _, s := range sampleShows {
				repo.AddShow(s)
			}
			return nil
		}
		return fmt.Errorf("read shows %s: %w", path, err)
	}
	for i, rec := range rows {
		if len(rec) < 5 {
			return fmt.Errorf("shows %s row %d: want 5 columns, got %d", path, i+2, len(rec))
		}
		id, err1 := strconv.ParseInt(rec[0], 10, 64)
		theatreID, err2 := strconv.ParseInt(rec[1], 10, 64)
		price, err3 := strconv.ParseInt(rec[3], 10, 64)
		seats, err4 := strconv.Atoi(rec[4])
		if err1 != nil || err2 != nil || err3 != nil || err4 != nil {
			return fmt.Errorf("shows %s row %d: bad numeric column", path, i+2)
		}
		if price <= 0 || seats < 0 {
			return fmt.Errorf("shows %s row %d: price must be positive and seats non-negative", path, i+2)
		}
		repo.AddShow(model.Show{
			ID:             id,
			TheatreID:      theatreID,
			Title:          rec[2],
			Price:          price,
			SeatsAvailable: seats,
		})
	}
	return nil
}

// readCSV returns every record after the header row.
func readCSV(path string) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()
	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) <= 1 {
		return nil, nil
	}
	return records[1:], nil
}

var sampleTheatres = []model.Theatre{
	{ID: 1, Name: "Grand Central Cinema", Location: "Downtown"},
	{ID: 2, Name: "Lakeside Multiplex", Location: "Lakeside"},
}

var sampleShows = []model.Show{
	{ID: 1, TheatreID: 1, Title: "The Long Voyage", Price: 100, SeatsAvailable: 20},
	{ID: 2, TheatreID: 1, Title: "Midnight Express", Price: 150, SeatsAvailable: 40},
	{ID: 3, TheatreID: 2, Title: "Silent Harbour", Price: 120, SeatsAvailable: 30},
}
