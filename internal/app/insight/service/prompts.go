package insight_service

import "fmt"

const (
	// Returned when the service answers with no text.
	InsightEmptyFallback = "No se pudo obtener información de la IA."
	// Returned when the request itself fails.
	InsightErrorFallback = "Error al conectar con el cerebro de la IA."
)

func insightPrompt(title string) string {
	return fmt.Sprintf(
		"Proporciona una descripción breve y fascinante (máximo 3 párrafos) de la película %q. "+
			"Incluye género, año aproximado y por qué es conocida. Responde en Español.",
		title,
	)
}

func suggestionsPrompt(query string) string {
	return fmt.Sprintf(
		"El usuario buscó la película %q pero no se encontró en su base de datos local. "+
			"Sugiere 3 películas similares o populares que podrían interesarle. "+
			"Devuelve solo los nombres de las películas separados por comas.",
		query,
	)
}
