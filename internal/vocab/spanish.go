package vocab

// spanishEntries returns the built-in Spanish base table. Coverage is
// deliberately partial: actions, targets and formats are mapped, but the
// transcript lexicons and domain clusters are not. Tables built from these
// entries report Partial() == true so callers can degrade gracefully.
func spanishEntries() []Entry {
	return []Entry{
		{Category: CategoryAction, Token: "LIST", Synonyms: []string{"listar", "enumerar", "mostrar"}},
		{Category: CategoryAction, Token: "GENERATE", Synonyms: []string{"generar", "crear", "escribir", "producir", "redactar", "dar"}},
		{Category: CategoryAction, Token: "ANALYZE", Synonyms: []string{"analizar", "examinar", "revisar", "evaluar"}},
		{Category: CategoryAction, Token: "EXTRACT", Synonyms: []string{"extraer", "obtener", "recopilar", "identificar"}},
		{Category: CategoryAction, Token: "SUMMARIZE", Synonyms: []string{"resumir", "condensar", "acortar"}},
		{Category: CategoryAction, Token: "MATCH", Synonyms: []string{"emparejar", "vincular", "relacionar"}},
		{Category: CategoryAction, Token: "RANK", Synonyms: []string{"ordenar", "clasificar", "priorizar"}},
		{Category: CategoryAction, Token: "COMPARE", Synonyms: []string{"comparar", "contrastar"}},
		{Category: CategoryAction, Token: "EXPLAIN", Synonyms: []string{"explicar", "describir", "aclarar", "definir"}},
		{Category: CategoryAction, Token: "TRANSLATE", Synonyms: []string{"traducir"}},
		{Category: CategoryAction, Token: "FIND", Synonyms: []string{"buscar", "encontrar", "localizar"}},

		{Category: CategoryPhrase, Token: "COMPARE", Synonyms: []string{"comparar con", "frente a"}},
		{Category: CategoryPhrase, Token: "RANK", Synonyms: []string{"ordenar por", "ordenado por"}},

		{Category: CategoryTarget, Token: "TRANSCRIPT", Synonyms: []string{"transcripcion", "transcripciones"}},
		{Category: CategoryTarget, Token: "CONVERSATION", Synonyms: []string{"conversacion", "conversaciones", "interaccion"}},
		{Category: CategoryTarget, Token: "CATALOG", Synonyms: []string{"catalogo", "inventario", "base de datos"}},
		{Category: CategoryTarget, Token: "DOCUMENT", Synonyms: []string{"documento", "documentos", "archivo", "texto", "articulo"}},
		{Category: CategoryTarget, Token: "EMAIL", Synonyms: []string{"correo", "correos", "mensaje", "mensajes"}},
		{Category: CategoryTarget, Token: "ITEMS", Synonyms: []string{"elementos", "temas", "puntos", "resultados", "productos", "problemas"}},
		{Category: CategoryTarget, Token: "CUSTOMER", Synonyms: []string{"cliente", "clientes", "usuario", "usuarios"}},

		{Category: CategoryExtraction, Token: "NAME", Synonyms: []string{"nombre", "nombres"}},
		{Category: CategoryExtraction, Token: "DATE", Synonyms: []string{"fecha", "fechas"}},
		{Category: CategoryExtraction, Token: "PRICE", Synonyms: []string{"precio", "precios", "costo", "importe"}},
		{Category: CategoryExtraction, Token: "ID", Synonyms: []string{"identificador", "identificadores"}},

		{Category: CategoryFormat, Token: "JSON", Synonyms: []string{"json", "formato json"}},
		{Category: CategoryFormat, Token: "LIST", Synonyms: []string{"lista", "vinetas", "lista numerada"}},
		{Category: CategoryFormat, Token: "TABLE", Synonyms: []string{"tabla", "formato de tabla"}},
		{Category: CategoryFormat, Token: "SUMMARY", Synonyms: []string{"resumen", "parrafo"}},

		{Category: CategoryStopWord, Token: "STOP", Synonyms: []string{
			"el", "la", "los", "las", "un", "una", "unos", "unas", "y", "o",
			"pero", "en", "de", "del", "al", "a", "por", "para", "con", "sin",
			"es", "son", "que", "este", "esta", "estos", "estas", "favor",
		}},

		{Category: CategoryModalVerb, Token: "MODAL", Synonyms: []string{
			"poder", "deber", "querer", "necesitar", "haber", "tener", "hacer",
		}},
	}
}
