// path: internal/archive/parquet_test.go
package archive

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/xitongsys/parquet-go-source/local"
	"github.com/xitongsys/parquet-go/reader"
)

func TestWriteGamesRoundTrip(t *testing.T) {
	records := []GameRecord{
		{
			GameID:    "7",
			Snapshots: 2,
			States: []BoardSnapshot{
				{Index: 0, Board: `{"A1":{"kind":2}}`},
				{Index: 1, Board: `{"A2":{"kind":2}}`},
			},
		},
		{
			GameID:    "11",
			Snapshots: 1,
			States: []BoardSnapshot{
				{Index: 0, Board: `{}`},
			},
		},
	}

	path := filepath.Join(t.TempDir(), "games.parquet")
	if err := WriteGames(path, records); err != nil {
		t.Fatalf("write games: %v", err)
	}

	fileReader, err := local.NewLocalFileReader(path)
	if err != nil {
		t.Fatalf("open file: %v", err)
	}
	defer fileReader.Close()

	parquetReader, err := reader.NewParquetReader(fileReader, new(GameRecord), 1)
	if err != nil {
		t.Fatalf("open reader: %v", err)
	}
	defer parquetReader.ReadStop()

	if got := parquetReader.GetNumRows(); got != int64(len(records)) {
		t.Fatalf("expected %d rows, got %d", len(records), got)
	}
	rows := make([]GameRecord, len(records))
	if err := parquetReader.Read(&rows); err != nil {
		t.Fatalf("read rows: %v", err)
	}
	if rows[0].GameID != "7" || rows[0].Snapshots != 2 {
		t.Fatalf("unexpected first row: %+v", rows[0])
	}
	if len(rows[0].States) != 2 || rows[0].States[1].Board != `{"A2":{"kind":2}}` {
		t.Fatalf("unexpected states: %+v", rows[0].States)
	}
}

func TestWriteGamesEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.parquet")
	if err := WriteGames(path, nil); err != nil {
		t.Fatalf("write empty: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("stat: %v", err)
	}
}
