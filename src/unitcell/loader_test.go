package unitcell

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// writeTempCSV writes content to a file under the test's temp dir and
// returns its path.
func writeTempCSV(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write fixture %s: %v", name, err)
	}
	return path
}

const outputsFixture = `ID,Unit Cell,E1,E2,G12,Nu12,Error
1,Chiral,10.5,8.2,3.1,0.32,0.01
2,Chiral,12.0,9.9,3.4,0.28,0.02
`

const inputsFixture = `ID,Unit Cell,Strut thickness [mm],Stiff volume,Total volume,Infill material
1,Chiral,0.6,2.0,10.0,foamed elastomer
2,Chiral,0.4,3.0,10.0,foamed elastomer
`

func TestLoadCategoryMergesOnIDAndUnitCell(t *testing.T) {
	pair := FilePair{
		Outputs: writeTempCSV(t, "outputs.csv", outputsFixture),
		Inputs:  writeTempCSV(t, "inputs.csv", inputsFixture),
	}
	recs, err := LoadCategory(pair)
	if err != nil {
		t.Fatalf("LoadCategory: %v", err)
	}
	if len(recs) != 2 {
		t.Fatalf("got %d records, want 2", len(recs))
	}
	r := recs[0]
	if r.ID != 1 || r.UnitCell != "Chiral" {
		t.Fatalf("unexpected first record key: ID=%d UnitCell=%q", r.ID, r.UnitCell)
	}
	if r.E1 != 10.5 || r.E2 != 8.2 || r.G12 != 3.1 || r.Nu12 != 0.32 {
		t.Fatalf("engineering constants not carried over: %+v", r)
	}
	if r.StrutThickness != 0.6 || r.StiffVolume != 2.0 || r.TotalVolume != 10.0 {
		t.Fatalf("inputs side not merged: %+v", r)
	}
	if r.InfillMaterial != "foamed elastomer" {
		t.Fatalf("infill material = %q, want foamed elastomer", r.InfillMaterial)
	}
	// E3 and the other 3D constants are optional and default to zero.
	if r.E3 != 0 || r.Nu13 != 0 {
		t.Fatalf("optional columns should be zero when absent: %+v", r)
	}
}

func TestLoadCategoryMissingInputsRow(t *testing.T) {
	pair := FilePair{
		Outputs: writeTempCSV(t, "outputs.csv", outputsFixture),
		Inputs: writeTempCSV(t, "inputs.csv",
			"ID,Unit Cell,Strut thickness [mm],Stiff volume,Total volume,Infill material\n"+
				"1,Chiral,0.6,2.0,10.0,foamed elastomer\n"),
	}
	_, err := LoadCategory(pair)
	if err == nil {
		t.Fatal("expected merge error for missing inputs row")
	}
	if !strings.Contains(err.Error(), "no inputs row for (ID=2, Unit Cell=Chiral)") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestReadOutputsDuplicateKey(t *testing.T) {
	pair := FilePair{
		Outputs: writeTempCSV(t, "outputs.csv",
			"ID,Unit Cell,E1,E2,G12,Nu12\n1,Chiral,1,1,1,0.3\n1,Chiral,2,2,2,0.3\n"),
		Inputs: writeTempCSV(t, "inputs.csv", inputsFixture),
	}
	_, err := LoadCategory(pair)
	if err == nil || !strings.Contains(err.Error(), "duplicate key") {
		t.Fatalf("expected duplicate key error, got %v", err)
	}
}

func TestReadOutputsMissingRequiredColumn(t *testing.T) {
	pair := FilePair{
		Outputs: writeTempCSV(t, "outputs.csv", "ID,Unit Cell,E1,E2,G12\n1,Chiral,1,1,1\n"),
		Inputs:  writeTempCSV(t, "inputs.csv", inputsFixture),
	}
	_, err := LoadCategory(pair)
	if err == nil || !strings.Contains(err.Error(), `missing required column "Nu12"`) {
		t.Fatalf("expected missing column error, got %v", err)
	}
}

func TestReadOutputsBadNumber(t *testing.T) {
	pair := FilePair{
		Outputs: writeTempCSV(t, "outputs.csv",
			"ID,Unit Cell,E1,E2,G12,Nu12\n1,Chiral,not-a-number,1,1,0.3\n"),
		Inputs: writeTempCSV(t, "inputs.csv", inputsFixture),
	}
	_, err := LoadCategory(pair)
	if err == nil || !strings.Contains(err.Error(), "row 2") {
		t.Fatalf("expected row-numbered parse error, got %v", err)
	}
}

func TestLoadAllConcatenatesInOrder(t *testing.T) {
	chiral := FilePair{
		Outputs: writeTempCSV(t, "c_out.csv", outputsFixture),
		Inputs:  writeTempCSV(t, "c_in.csv", inputsFixture),
	}
	lattice := FilePair{
		Outputs: writeTempCSV(t, "l_out.csv",
			"ID,Unit Cell,E1,E2,G12,Nu12\n7,Lattice,5,5,2,0.25\n"),
		Inputs: writeTempCSV(t, "l_in.csv",
			"ID,Unit Cell,Strut thickness [mm],Stiff volume,Total volume,Infill material\n"+
				"7,Lattice,0.9,4,10,foamed elastomer\n"),
	}
	recs, err := LoadAll([]FilePair{chiral, lattice})
	if err != nil {
		t.Fatalf("LoadAll: %v", err)
	}
	if len(recs) != 3 {
		t.Fatalf("got %d records, want 3", len(recs))
	}
	if recs[0].UnitCell != "Chiral" || recs[2].UnitCell != "Lattice" {
		t.Fatalf("category order not preserved: %q ... %q", recs[0].UnitCell, recs[2].UnitCell)
	}
}

func TestLoadAllEmptyIsError(t *testing.T) {
	if _, err := LoadAll(nil); err == nil {
		t.Fatal("expected error for empty pair list")
	}
}

func TestLoadAllFirstFailureAborts(t *testing.T) {
	good := FilePair{
		Outputs: writeTempCSV(t, "out.csv", outputsFixture),
		Inputs:  writeTempCSV(t, "in.csv", inputsFixture),
	}
	bad := FilePair{Outputs: filepath.Join(t.TempDir(), "missing.csv"), Inputs: good.Inputs}
	if _, err := LoadAll([]FilePair{bad, good}); err == nil {
		t.Fatal("expected error when the first pair cannot be read")
	}
}
