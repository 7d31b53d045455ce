package arrowtable

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"
	"github.com/apache/arrow-go/v18/parquet"
	"github.com/apache/arrow-go/v18/parquet/compress"
	"github.com/apache/arrow-go/v18/parquet/pqarrow"

	"github.com/tablewise/reshape"
)

// WriteParquet writes the table to w as a Snappy-compressed Parquet file,
// going through the Arrow representation.
func WriteParquet(t *reshape.Table, w io.Writer) error {
	rec, err := ToRecord(t, nil)
	if err != nil {
		return err
	}
	defer rec.Release()

	props := parquet.NewWriterProperties(parquet.WithCompression(compress.Codecs.Snappy))
	arrowProps := pqarrow.NewArrowWriterProperties(pqarrow.WithStoreSchema())

	writer, err := pqarrow.NewFileWriter(rec.Schema(), w, props, arrowProps)
	if err != nil {
		return fmt.Errorf("failed to create parquet writer: %w", err)
	}

	tbl := array.NewTableFromRecords(rec.Schema(), []arrow.Record{rec})
	defer tbl.Release()

	if err := writer.WriteTable(tbl, tbl.NumRows()); err != nil {
		writer.Close()
		return fmt.Errorf("failed to write table to parquet: %w", err)
	}
	return writer.Close()
}

// WriteCSV writes the table to w as CSV with a header row. Cells are
// rendered with their Format form; nulls are empty fields.
func WriteCSV(t *reshape.Table, w io.Writer) error {
	writer := csv.NewWriter(w)

	if err := writer.Write(t.ColumnNames()); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	row := make([]string, t.NumCols())
	for r := 0; r < t.NumRows(); r++ {
		cells, err := t.Row(r)
		if err != nil {
			return err
		}
		for i, v := range cells {
			row[i] = v.Format()
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write CSV row: %w", err)
		}
	}

	writer.Flush()
	return writer.Error()
}

// WriteJSON writes the table to w as an indented JSON array of objects,
// one object per row, preserving value types. Null cells encode as null.
func WriteJSON(t *reshape.Table, w io.Writer) error {
	names := t.ColumnNames()
	records := make([]map[string]any, 0, t.NumRows())

	for r := 0; r < t.NumRows(); r++ {
		cells, err := t.Row(r)
		if err != nil {
			return err
		}
		record := make(map[string]any, len(cells))
		for i, v := range cells {
			if v.IsNull {
				record[names[i]] = nil
			} else {
				record[names[i]] = v.Raw
			}
		}
		records = append(records, record)
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(records); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}
	return nil
}
