package roster

import (
	"encoding/csv"
	"fmt"
	"io"
	"log"
	"os"
)

// Entry - пара (номер студенческого билета, имя) из внешнего списка
type Entry struct {
	StudentID string
	Name      string
}

// Loader отдает актуальный снимок списка студентов
type Loader interface {
	Load() ([]Entry, error)
}

type fileLoader struct {
	path string
}

func NewFileLoader(path string) Loader {
	return &fileLoader{path: path}
}

// встроенный набор на случай отсутствия CSV-файла
var defaultEntries = []Entry{
	{StudentID: "20230001", Name: "Zhang San"},
	{StudentID: "20230002", Name: "Li Si"},
	{StudentID: "20230003", Name: "Wang Wu"},
}

// Load читает CSV со столбцами student_id,name; если файла нет,
// возвращает встроенный набор по умолчанию
func (l *fileLoader) Load() ([]Entry, error) {
	file, err := os.Open(l.path)
	if err != nil {
		if os.IsNotExist(err) {
			log.Printf("CSV-файл со студентами не найден (%s), используем набор по умолчанию", l.path)
			return defaultEntries, nil
		}
		return nil, fmt.Errorf("ошибка при открытии файла студентов: %w", err)
	}
	defer file.Close()

	return parse(file)
}

func parse(r io.Reader) ([]Entry, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("ошибка при чтении CSV со студентами: %w", err)
	}

	var entries []Entry
	for i, record := range records {
		// первая строка - заголовок
		if i == 0 {
			continue
		}
		if len(record) < 2 {
			continue
		}
		entries = append(entries, Entry{
			StudentID: record[0],
			Name:      record[1],
		})
	}

	return entries, nil
}

// Contains проверяет точное совпадение пары во всем снимке
func Contains(entries []Entry, studentID, name string) bool {
	for _, entry := range entries {
		if entry.StudentID == studentID && entry.Name == name {
			return true
		}
	}
	return false
}
