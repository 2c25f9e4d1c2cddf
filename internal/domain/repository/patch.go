package repository

// Patch actualización parcial: columna -> nuevo valor. Solo se tocan las columnas presentes.
type Patch map[string]any
