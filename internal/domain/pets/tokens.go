package pets

import "strings"

// SplitList tokeniza el texto libre de los campos lista (diet, likes, dislikes).
// Regla única para alta y edición: separar por coma, trim y descartar vacíos.
// No deduplica ni reordena, así editar-y-guardar sin cambios no altera el campo.
func SplitList(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		out = append(out, p)
	}
	return out
}

// JoinList es la inversa de SplitList, para repoblar el form en edición.
func JoinList(tokens []string) string {
	return strings.Join(tokens, ", ")
}
