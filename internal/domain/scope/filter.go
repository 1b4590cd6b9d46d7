package scope

import (
	"strconv"
	"strings"
)

// Filter acumula condiciones SQL de visibilidad con placeholders '?'.
// Los repositorios renumeran los '?' a $n al componer la consulta final,
// de modo que el filtro puede combinarse con cualquier condición base.
// La construcción es pura: ningún filtro toca la base de datos.
type Filter struct {
	conds []string
	args  []any
}

// Where añade una condición con placeholders '?' y sus argumentos.
func (f *Filter) Where(cond string, args ...any) {
	f.conds = append(f.conds, cond)
	f.args = append(f.args, args...)
}

// IsEmpty indica que el filtro no restringe nada (visibilidad total).
func (f Filter) IsEmpty() bool { return len(f.conds) == 0 }

// Conds devuelve las condiciones acumuladas (con placeholders '?').
func (f Filter) Conds() []string { return f.conds }

// Args devuelve los argumentos en el orden de los placeholders.
func (f Filter) Args() []any { return f.args }

// SQL renderiza las condiciones unidas con AND, renumerando cada '?' a
// $start, $start+1, ... Devuelve el fragmento y sus argumentos.
func (f Filter) SQL(start int) (string, []any) {
	if f.IsEmpty() {
		return "", nil
	}
	var b strings.Builder
	n := start
	for i, cond := range f.conds {
		if i > 0 {
			b.WriteString(" AND ")
		}
		for _, ch := range cond {
			if ch == '?' {
				b.WriteByte('$')
				b.WriteString(strconv.Itoa(n))
				n++
				continue
			}
			b.WriteRune(ch)
		}
	}
	return b.String(), f.args
}

// All devuelve el filtro sin restricciones.
func All() Filter { return Filter{} }

// None devuelve un filtro que no deja pasar ninguna fila. Se usa cuando el
// rol del usuario no es ninguno de los conocidos.
func None() Filter {
	var f Filter
	f.Where("FALSE")
	return f
}
