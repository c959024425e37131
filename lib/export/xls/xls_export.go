package xlsexport

import (
	"bytes"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"

	dbmodels "hr-profile-backend/models/db"
)

type Provider interface {
	ExportEmployeeList(list []dbmodels.Employee) (*bytes.Buffer, error)
	ExportAbsenceList(list []dbmodels.AbsenceRequest) (*bytes.Buffer, error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{}
}

type impl struct{}

var employeeHeaders = []string{"ФИО", "Почта", "Роль", "Должность", "Телефон", "Адрес"}

func (i impl) ExportEmployeeList(list []dbmodels.Employee) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			log.WithError(err).Error("ошибка закрытия файла")
		}
	}()
	sheet := "Sheet1"
	row := 0
	row, err := writeHeader(f, sheet, row, employeeHeaders)
	if err != nil {
		return nil, errors.Wrap(err, "ошибка формирования заголовка в xlsx")
	}
	if len(list) != 0 {
		if err = applyDataCellStyle(f, sheet, 1, row+1, len(employeeHeaders), len(list)+1); err != nil {
			return nil, errors.Wrap(err, "ошибка формирования таблицы с данными в xlsx")
		}
		for _, item := range list {
			row++
			values := []interface{}{
				item.Name,
				item.Email,
				item.Role.ToHuman(),
				item.Position,
				strValue(item.Phone),
				strValue(item.Address),
			}
			if err = writeRow(f, sheet, row, values); err != nil {
				return nil, errors.Wrap(err, "ошибка формирования таблицы с данными в xlsx")
			}
		}
	}
	f.SetSheetName(sheet, "Сотрудники")
	return f.WriteToBuffer()
}

var absenceHeaders = []string{"Сотрудник", "Дата начала", "Дата окончания", "Статус", "Дата подачи"}

func (i impl) ExportAbsenceList(list []dbmodels.AbsenceRequest) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			log.WithError(err).Error("ошибка закрытия файла")
		}
	}()
	sheet := "Sheet1"
	row := 0
	row, err := writeHeader(f, sheet, row, absenceHeaders)
	if err != nil {
		return nil, errors.Wrap(err, "ошибка формирования заголовка в xlsx")
	}
	if len(list) != 0 {
		if err = applyDataCellStyle(f, sheet, 1, row+1, len(absenceHeaders), len(list)+1); err != nil {
			return nil, errors.Wrap(err, "ошибка формирования таблицы с данными в xlsx")
		}
		for _, item := range list {
			row++
			employeeName := ""
			if item.Employee != nil {
				employeeName = item.Employee.Name
			}
			values := []interface{}{
				employeeName,
				item.StartDate.Format("02.01.2006"),
				item.EndDate.Format("02.01.2006"),
				item.Status.ToHuman(),
				item.CreatedAt.Format("02.01.2006"),
			}
			if err = writeRow(f, sheet, row, values); err != nil {
				return nil, errors.Wrap(err, "ошибка формирования таблицы с данными в xlsx")
			}
		}
	}
	f.SetSheetName(sheet, "Заявки на отсутствие")
	return f.WriteToBuffer()
}

func strValue(value *string) interface{} {
	if value == nil {
		return nil
	}
	return *value
}
