// Package fuzztests houses Go fuzz harnesses for the name attribute parser
// and the doc comment scanner. They guard against panics, hangs and broken
// span accounting on arbitrary inputs.
//
// Назначение: прогонять байты через lexer/parser/xmldoc и проверять
// инварианты из internal/testkit.
//
// Не делает: генерацию корпусов, запись файлов, выполнение CLI.
package fuzztests
