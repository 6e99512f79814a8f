// path: internal/archive/parquet.go
// Package archive writes game snapshot histories to parquet files.
package archive

import (
	"fmt"

	"github.com/xitongsys/parquet-go-source/local"
	"github.com/xitongsys/parquet-go/parquet"
	"github.com/xitongsys/parquet-go/writer"
)

// BoardSnapshot is one board state within a game, in chronological order.
// Board holds the JSON external representation (square name → piece).
type BoardSnapshot struct {
	Index int32  `parquet:"name=index, type=INT32"`
	Board string `parquet:"name=board, type=BYTE_ARRAY, convertedtype=UTF8"`
}

// GameRecord is the parquet row schema for one game.
type GameRecord struct {
	GameID    string          `parquet:"name=game_id, type=BYTE_ARRAY, convertedtype=UTF8"`
	Snapshots int32           `parquet:"name=snapshots, type=INT32"`
	States    []BoardSnapshot `parquet:"name=states, type=LIST"`
}

const writerParallelism = 2

// WriteGames writes records to a snappy-compressed parquet file at path.
func WriteGames(path string, records []GameRecord) error {
	fileWriter, err := local.NewLocalFileWriter(path)
	if err != nil {
		return fmt.Errorf("open parquet file: %w", err)
	}
	defer fileWriter.Close()

	parquetWriter, err := writer.NewParquetWriter(fileWriter, new(GameRecord), writerParallelism)
	if err != nil {
		return fmt.Errorf("create parquet writer: %w", err)
	}
	parquetWriter.CompressionType = parquet.CompressionCodec_SNAPPY

	for _, record := range records {
		if err := parquetWriter.Write(record); err != nil {
			return fmt.Errorf("write game %s: %w", record.GameID, err)
		}
	}
	if err := parquetWriter.WriteStop(); err != nil {
		return fmt.Errorf("finish parquet file: %w", err)
	}
	return fileWriter.Close()
}
