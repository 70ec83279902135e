// Copyright 2026 The AISI Dashboard Authors
// SPDX-License-Identifier: MIT

package dataset

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleCSV = `state,district,AISI_level,child_ratio,AISI_score
MH,A,High,0.9,71.2
MH,B,Low,0.2,12.0
UP,C,High,0.95,80.1
`

func TestParse_Basic(t *testing.T) {
	tbl, err := Parse(strings.NewReader(sampleCSV))
	require.NoError(t, err)

	assert.Equal(t, []string{"state", "district", "AISI_level", "child_ratio", "AISI_score"}, tbl.Header)
	require.Equal(t, 3, tbl.Len())

	first := tbl.Records[0]
	assert.Equal(t, "MH", first.State)
	assert.Equal(t, "A", first.District)
	assert.Equal(t, "High", first.Level)
	assert.InDelta(t, 0.9, first.ChildRatio, 1e-9)
	assert.Equal(t, []string{"MH", "A", "High", "0.9", "71.2"}, first.Fields)
	assert.True(t, first.IsHigh())
	assert.False(t, tbl.Records[1].IsHigh())
}

func TestParse_ColumnOrderIndependent(t *testing.T) {
	csv := "child_ratio,AISI_level,district,state\n0.5,Low,X,KA\n"
	tbl, err := Parse(strings.NewReader(csv))
	require.NoError(t, err)

	r := tbl.Records[0]
	assert.Equal(t, "KA", r.State)
	assert.Equal(t, "X", r.District)
	assert.Equal(t, "Low", r.Level)
	assert.InDelta(t, 0.5, r.ChildRatio, 1e-9)
}

func TestParse_BOM(t *testing.T) {
	tbl, err := Parse(strings.NewReader("\ufeff" + sampleCSV))
	require.NoError(t, err)
	assert.Equal(t, "state", tbl.Header[0])
	assert.Equal(t, 3, tbl.Len())
}

func TestParse_MissingColumn(t *testing.T) {
	_, err := Parse(strings.NewReader("state,district,child_ratio\nMH,A,0.1\n"))
	require.Error(t, err)

	var mce *MissingColumnError
	require.True(t, errors.As(err, &mce))
	assert.Equal(t, ColLevel, mce.Column)
	assert.Contains(t, err.Error(), "AISI_level")
}

func TestParse_Empty(t *testing.T) {
	_, err := Parse(strings.NewReader(""))
	assert.ErrorIs(t, err, ErrEmpty)
}

func TestParse_HeaderOnly(t *testing.T) {
	tbl, err := Parse(strings.NewReader("state,district,AISI_level,child_ratio\n"))
	require.NoError(t, err)
	assert.Equal(t, 0, tbl.Len())
}

func TestParse_NonNumericRatioIsNaN(t *testing.T) {
	csv := "state,district,AISI_level,child_ratio\nMH,A,High,\nMH,B,Low,n/a\nMH,C,Low, 0.25 \n"
	tbl, err := Parse(strings.NewReader(csv))
	require.NoError(t, err)

	assert.True(t, math.IsNaN(tbl.Records[0].ChildRatio))
	assert.True(t, math.IsNaN(tbl.Records[1].ChildRatio))
	assert.InDelta(t, 0.25, tbl.Records[2].ChildRatio, 1e-9)
}

func TestParse_RaggedRowFails(t *testing.T) {
	_, err := Parse(strings.NewReader("state,district,AISI_level,child_ratio\nMH,A,High\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "row 2")
}

func TestTable_LenNil(t *testing.T) {
	var tbl *Table
	assert.Equal(t, 0, tbl.Len())
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	require.NoError(t, os.WriteFile(path, []byte(sampleCSV), 0o600))

	tbl, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 3, tbl.Len())
}

func TestLoad_Missing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.csv"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "open dataset")
}
