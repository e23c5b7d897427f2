package ddl

import (
	"fmt"
	"strings"

	"github.com/hatlonely/ddlx/platform"
	"github.com/pkg/errors"
)

// Writer 基于平台类型注册表生成 DDL 语句
type Writer struct {
	platform *platform.Platform
}

func NewWriter(p *platform.Platform) *Writer {
	return &Writer{platform: p}
}

// BuildCreateTable 构建创建表的 SQL 语句
func (w *Writer) BuildCreateTable(model *TableModel) (string, error) {
	var columns []string

	for _, column := range model.Columns {
		columnDef, err := w.buildColumnDefinition(column)
		if err != nil {
			return "", err
		}
		columns = append(columns, columnDef)
	}

	if len(model.PrimaryKey) > 0 {
		pkDef := fmt.Sprintf("PRIMARY KEY (%s)", strings.Join(model.PrimaryKey, ", "))
		columns = append(columns, pkDef)
	}

	return fmt.Sprintf("CREATE TABLE IF NOT EXISTS %s (\n  %s\n)",
		model.Table, strings.Join(columns, ",\n  ")), nil
}

// buildColumnDefinition 构建单个列定义，列类型经注册表解析
func (w *Writer) buildColumnDefinition(column ColumnDefinition) (string, error) {
	// 指定了长度或精度说明存为文本，JSON 族据此落到 VARCHAR
	withScale := column.Length > 0 || column.Scale > 0
	platformType, err := w.platform.TypeMapping().Lookup(column.Type, withScale)
	if err != nil {
		return "", errors.WithMessagef(err, "column %s", column.Name)
	}

	parts := []string{column.Name, platformType.Render(column.Length, column.Scale)}

	if column.Required {
		parts = append(parts, "NOT NULL")
	}

	if column.Default != nil {
		parts = append(parts, fmt.Sprintf("DEFAULT %s", formatDefaultValue(column.Default)))
	}

	return strings.Join(parts, " "), nil
}

// BuildCreateIndex 构建创建索引的 SQL 语句
func (w *Writer) BuildCreateIndex(table string, index IndexDefinition) string {
	indexType := "INDEX"
	if index.Unique {
		indexType = "UNIQUE INDEX"
	}

	// mysql 不支持 IF NOT EXISTS 语法用于索引
	if w.platform.Name() == "mysql" {
		return fmt.Sprintf("CREATE %s %s ON %s (%s)",
			indexType, index.Name, table, strings.Join(index.Fields, ", "))
	}

	return fmt.Sprintf("CREATE %s IF NOT EXISTS %s ON %s (%s)",
		indexType, index.Name, table, strings.Join(index.Fields, ", "))
}

// formatDefaultValue 格式化默认值
func formatDefaultValue(value any) string {
	switch v := value.(type) {
	case string:
		return fmt.Sprintf("'%s'", strings.ReplaceAll(v, "'", "''"))
	case bool:
		if v {
			return "1"
		}
		return "0"
	default:
		return fmt.Sprintf("%v", v)
	}
}
