package report

import (
	"context"
	"fmt"

	"github.com/hrms-workforce/hrms-backend-go/internal/domain/attendance"
	"github.com/hrms-workforce/hrms-backend-go/internal/domain/auth"
	"github.com/hrms-workforce/hrms-backend-go/internal/domain/report"
	"github.com/hrms-workforce/hrms-backend-go/internal/pkg/validator"
	"github.com/xuri/excelize/v2"
)

const (
	xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

	summarySheet = "Summary"
	recordsSheet = "Records"
)

var recordHeaders = []string{
	"No", "Date", "Employee Code", "Employee Name", "Check In", "Check In Location",
	"Check Out", "Check Out Location", "Status", "Working Hours", "Overtime", "Overtime Hours", "Remarks",
}

// ExportAttendanceReport implements report.ReportService.
func (s *ReportServiceImpl) ExportAttendanceReport(ctx context.Context, principal auth.Principal, query report.AttendanceReportQuery) (report.ExportFile, error) {
	rpt, err := s.AttendanceReport(ctx, principal, query)
	if err != nil {
		return report.ExportFile{}, err
	}

	content, err := s.renderWorkbook(query, rpt)
	if err != nil {
		return report.ExportFile{}, fmt.Errorf("%w: %v", report.ErrReportGenerationFailed, err)
	}

	return report.ExportFile{
		Filename:    fmt.Sprintf("attendance_report_%s.xlsx", s.clock.Now().Format("20060102_150405")),
		ContentType: xlsxContentType,
		Content:     content,
	}, nil
}

func (s *ReportServiceImpl) renderWorkbook(query report.AttendanceReportQuery, rpt report.AttendanceReport) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", summarySheet); err != nil {
		return nil, err
	}
	if _, err := f.NewSheet(recordsSheet); err != nil {
		return nil, err
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "#FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#4472C4"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		return nil, err
	}

	period := "All time"
	if query.StartDate != "" && query.EndDate != "" {
		period = query.StartDate + " to " + query.EndDate
	}

	summary := [][]any{
		{"Metric", "Value"},
		{"Period", period},
		{"Total Days", rpt.TotalDays},
		{"Present", rpt.Present},
		{"Absent", rpt.Absent},
		{"Half-day", rpt.HalfDay},
		{"On Leave", rpt.OnLeave},
		{"Total Working Hours", rpt.TotalWorkingHours},
		{"Generated At", s.clock.Now().Format("2006-01-02 15:04:05")},
	}
	for i, row := range summary {
		cell, _ := excelize.CoordinatesToCellName(1, i+1)
		if err := f.SetSheetRow(summarySheet, cell, &row); err != nil {
			return nil, err
		}
	}
	if err := f.SetCellStyle(summarySheet, "A1", "B1", headerStyle); err != nil {
		return nil, err
	}
	_ = f.SetColWidth(summarySheet, "A", "A", 24)
	_ = f.SetColWidth(summarySheet, "B", "B", 28)

	if err := f.SetSheetRow(recordsSheet, "A1", &recordHeaders); err != nil {
		return nil, err
	}
	lastHeader, _ := excelize.CoordinatesToCellName(len(recordHeaders), 1)
	if err := f.SetCellStyle(recordsSheet, "A1", lastHeader, headerStyle); err != nil {
		return nil, err
	}

	for i, r := range rpt.Records {
		row := recordRow(i+1, r)
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		if err := f.SetSheetRow(recordsSheet, cell, &row); err != nil {
			return nil, err
		}
	}
	_ = f.SetColWidth(recordsSheet, "A", "A", 6)
	_ = f.SetColWidth(recordsSheet, "B", "M", 18)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func recordRow(no int, r attendance.AttendanceResponse) []any {
	var code, name string
	if r.Employee != nil {
		code = r.Employee.EmployeeCode
		name = r.Employee.FirstName
		if r.Employee.LastName != "" {
			name += " " + r.Employee.LastName
		}
	}
	return []any{
		no,
		r.Date,
		code,
		name,
		formatPunch(r.CheckIn),
		r.CheckIn.Location,
		formatPunch(r.CheckOut),
		r.CheckOut.Location,
		string(r.Status),
		r.WorkingHours,
		r.Overtime,
		r.OvertimeHours,
		r.Remarks,
	}
}

func formatPunch(p attendance.PunchResponse) string {
	if p.Time == nil {
		return ""
	}
	return p.Time.Format(validator.DateLayout + " 15:04:05")
}
