package services

import (
	"fmt"
	"io"

	"github.com/go-faster/errors"
	"github.com/xuri/excelize/v2"
)

const staffSheetName = "Staff"

// WriteStaffXLSX renders an annotated staff list as a spreadsheet.
func WriteStaffXLSX(w io.Writer, trackName string, rows []StaffRow) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	index, err := f.NewSheet(staffSheetName)
	if err != nil {
		return errors.Wrap(err, "create staff sheet")
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return errors.Wrap(err, "drop default sheet")
	}

	header := []interface{}{"Name", "Location", "Department", "Role", trackName}
	if err := f.SetSheetRow(staffSheetName, "A1", &header); err != nil {
		return errors.Wrap(err, "write header row")
	}

	for i, row := range rows {
		cell := fmt.Sprintf("A%d", i+2)
		values := []interface{}{
			row.Profile.FullName(),
			row.Location,
			row.DepartmentName,
			row.RoleName,
			string(row.Status),
		}
		if err := f.SetSheetRow(staffSheetName, cell, &values); err != nil {
			return errors.Wrapf(err, "write staff row %d", i)
		}
	}

	return errors.Wrap(f.Write(w), "write workbook")
}
