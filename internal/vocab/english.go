package vocab

// englishEntries returns the built-in English base table. The entries are
// immutable source data; per-configuration extensions come in as overlays.
func englishEntries() []Entry {
	return []Entry{
		// Action verbs (keyed by lemma).
		{Category: CategoryAction, Token: "LIST", Synonyms: []string{"list", "enumerate", "itemize", "show", "display"}},
		{Category: CategoryAction, Token: "GENERATE", Synonyms: []string{"generate", "create", "write", "produce", "compose", "draft", "make", "build", "suggest", "give", "provide"}},
		{Category: CategoryAction, Token: "ANALYZE", Synonyms: []string{"analyze", "analyse", "examine", "review", "assess", "evaluate", "inspect", "study"}},
		{Category: CategoryAction, Token: "EXTRACT", Synonyms: []string{"extract", "pull", "retrieve", "collect", "gather", "get", "fetch", "identify"}},
		{Category: CategoryAction, Token: "SUMMARIZE", Synonyms: []string{"summarize", "summarise", "condense", "shorten", "recap", "abridge"}},
		{Category: CategoryAction, Token: "MATCH", Synonyms: []string{"match", "map", "link", "correlate", "associate", "pair"}},
		{Category: CategoryAction, Token: "RANK", Synonyms: []string{"rank", "order", "sort", "prioritize", "prioritise", "score"}},
		{Category: CategoryAction, Token: "COMPARE", Synonyms: []string{"compare", "contrast", "differentiate", "weigh"}},
		{Category: CategoryAction, Token: "CLASSIFY", Synonyms: []string{"classify", "categorize", "categorise", "label", "tag", "group", "segment"}},
		{Category: CategoryAction, Token: "EXPLAIN", Synonyms: []string{"explain", "describe", "clarify", "elaborate", "define", "detail"}},
		{Category: CategoryAction, Token: "TRANSLATE", Synonyms: []string{"translate", "localize", "localise"}},
		{Category: CategoryAction, Token: "FILTER", Synonyms: []string{"filter", "exclude", "remove", "omit", "narrow"}},
		{Category: CategoryAction, Token: "FIND", Synonyms: []string{"find", "locate", "search", "discover", "detect"}},
		{Category: CategoryAction, Token: "CONVERT", Synonyms: []string{"convert", "transform", "reformat", "rewrite"}},

		// Compound action phrases that single-verb matching misses.
		{Category: CategoryPhrase, Token: "COMPARE", Synonyms: []string{"compare against", "compare with", "compare to", "side by side"}},
		{Category: CategoryPhrase, Token: "RANK", Synonyms: []string{"rank by", "ranking by", "ranked by", "order by", "sort by", "sorted by"}},
		{Category: CategoryPhrase, Token: "MATCH", Synonyms: []string{"match it to", "match them to", "match against", "match to", "look up in", "cross reference"}},
		{Category: CategoryPhrase, Token: "EXTRACT", Synonyms: []string{"pull out", "take out", "pick out"}},
		{Category: CategoryPhrase, Token: "SUMMARIZE", Synonyms: []string{"boil down", "sum up"}},
		{Category: CategoryPhrase, Token: "FILTER", Synonyms: []string{"filter out", "leave out", "weed out"}},

		// Target objects. More specific targets shadow generic ones downstream.
		{Category: CategoryTarget, Token: "TRANSCRIPT", Synonyms: []string{"transcript", "transcripts", "call log", "call logs", "call recording"}},
		{Category: CategoryTarget, Token: "CONVERSATION", Synonyms: []string{"conversation", "conversations", "interaction", "interactions", "dialogue", "chat", "chats"}},
		{Category: CategoryTarget, Token: "CATALOG", Synonyms: []string{"catalog", "catalogue", "inventory", "database", "registry", "directory"}},
		{Category: CategoryTarget, Token: "DOCUMENT", Synonyms: []string{"document", "documents", "doc", "docs", "file", "files", "text", "article", "articles"}},
		{Category: CategoryTarget, Token: "EMAIL", Synonyms: []string{"email", "emails", "mail", "message", "messages"}},
		{Category: CategoryTarget, Token: "REPORT", Synonyms: []string{"report", "reports"}},
		{Category: CategoryTarget, Token: "ITEMS", Synonyms: []string{"items", "issues", "topics", "points", "entries", "results", "options", "examples", "ideas", "questions", "products", "records"}},
		{Category: CategoryTarget, Token: "CUSTOMER", Synonyms: []string{"customer", "customers", "client", "clients", "user", "users", "caller"}},
		{Category: CategoryTarget, Token: "DATA", Synonyms: []string{"data", "dataset", "datasets", "table", "tables", "spreadsheet"}},
		{Category: CategoryTarget, Token: "REVIEW", Synonyms: []string{"review", "reviews", "feedback", "comment", "comments", "testimonial"}},
		{Category: CategoryTarget, Token: "CODE", Synonyms: []string{"code", "function", "functions", "script", "scripts", "snippet"}},

		// Extraction fields.
		{Category: CategoryExtraction, Token: "NAME", Synonyms: []string{"name", "names", "full name"}},
		{Category: CategoryExtraction, Token: "ID", Synonyms: []string{"id", "ids", "identifier", "identifiers"}},
		{Category: CategoryExtraction, Token: "DATE", Synonyms: []string{"date", "dates", "timestamp", "timestamps", "day"}},
		{Category: CategoryExtraction, Token: "EMAIL", Synonyms: []string{"email address", "email addresses"}},
		{Category: CategoryExtraction, Token: "PHONE", Synonyms: []string{"phone", "phone number", "phone numbers", "telephone"}},
		{Category: CategoryExtraction, Token: "PRICE", Synonyms: []string{"price", "prices", "cost", "costs", "amount", "amounts", "total"}},
		{Category: CategoryExtraction, Token: "ADDRESS", Synonyms: []string{"address", "addresses", "location", "locations"}},
		{Category: CategoryExtraction, Token: "STATUS", Synonyms: []string{"status", "state", "stage"}},
		{Category: CategoryExtraction, Token: "KEYWORD", Synonyms: []string{"keyword", "keywords", "key term", "key terms", "key phrase"}},
		{Category: CategoryExtraction, Token: "SENTIMENT", Synonyms: []string{"sentiment", "tone", "mood", "emotion"}},

		// Output formats.
		{Category: CategoryFormat, Token: "JSON", Synonyms: []string{"json", "json array", "json object", "json format"}},
		{Category: CategoryFormat, Token: "LIST", Synonyms: []string{"bullet list", "bulleted list", "bullet points", "numbered list", "list format"}},
		{Category: CategoryFormat, Token: "TABLE", Synonyms: []string{"table", "tabular", "table format", "markdown table", "csv", "spreadsheet format"}},
		{Category: CategoryFormat, Token: "SUMMARY", Synonyms: []string{"summary", "short summary", "brief summary", "paragraph", "prose"}},
		{Category: CategoryFormat, Token: "XML", Synonyms: []string{"xml", "xml format"}},
		{Category: CategoryFormat, Token: "YAML", Synonyms: []string{"yaml", "yml"}},

		// Domain keyword clusters.
		{Category: CategoryDomain, Token: "NBA", Synonyms: []string{"nba", "basketball", "playoffs", "lakers", "celtics", "dunk", "three pointer"}},
		{Category: CategoryDomain, Token: "FINANCE", Synonyms: []string{"invoice", "billing", "payment", "refund", "balance", "transaction", "statement"}},
		{Category: CategoryDomain, Token: "ECOMMERCE", Synonyms: []string{"order", "shipping", "delivery", "cart", "checkout", "sku", "warehouse"}},
		{Category: CategoryDomain, Token: "TELECOM", Synonyms: []string{"router", "modem", "bandwidth", "outage", "signal", "broadband", "data plan"}},
		{Category: CategoryDomain, Token: "HEALTHCARE", Synonyms: []string{"patient", "appointment", "prescription", "diagnosis", "clinic", "insurance claim"}},
		{Category: CategoryDomain, Token: "SOFTWARE", Synonyms: []string{"login", "password", "account", "bug", "crash", "update", "install", "app"}},

		// Support issue types (transcript encoding).
		{Category: CategoryIssue, Token: "BILLING_DISPUTE", Synonyms: []string{"overcharge", "overcharged", "double charge", "double charged", "charged twice", "billing error", "wrong charge", "incorrect bill", "unexpected charge", "disputed charge"}},
		{Category: CategoryIssue, Token: "SERVICE_OUTAGE", Synonyms: []string{"outage", "service down", "no service", "not working", "stopped working", "down again", "offline", "no connection"}},
		{Category: CategoryIssue, Token: "TECHNICAL_ISSUE", Synonyms: []string{"error message", "keeps crashing", "crash", "glitch", "bug", "freezes", "slow performance", "broken"}},
		{Category: CategoryIssue, Token: "ACCOUNT_ACCESS", Synonyms: []string{"locked out", "cannot log in", "can't log in", "reset my password", "forgot password", "login issue", "access denied"}},
		{Category: CategoryIssue, Token: "SHIPPING_DELAY", Synonyms: []string{"never arrived", "still waiting", "late delivery", "delayed shipment", "lost package", "where is my order", "tracking"}},
		{Category: CategoryIssue, Token: "CANCELLATION", Synonyms: []string{"cancel my", "cancellation", "close my account", "unsubscribe", "terminate"}},
		{Category: CategoryIssue, Token: "COMPLAINT", Synonyms: []string{"complaint", "disappointed", "poor service", "bad experience", "unacceptable"}},

		// Agent remediation actions (transcript encoding).
		{Category: CategoryCallAction, Token: "REFUND", Synonyms: []string{"refund", "refunded", "money back", "reimburse", "reimbursement"}},
		{Category: CategoryCallAction, Token: "CREDIT", Synonyms: []string{"credit", "credited", "account credit", "goodwill credit"}},
		{Category: CategoryCallAction, Token: "ESCALATE", Synonyms: []string{"escalate", "escalated", "escalating", "supervisor", "tier two", "specialist team"}},
		{Category: CategoryCallAction, Token: "REPLACE", Synonyms: []string{"replacement", "replace", "send a new", "exchange"}},
		{Category: CategoryCallAction, Token: "RESET", Synonyms: []string{"reset", "password reset", "restore access", "unlock"}},
		{Category: CategoryCallAction, Token: "TROUBLESHOOT", Synonyms: []string{"troubleshoot", "restart", "reboot", "reconfigure", "walk you through", "run a diagnostic"}},
		{Category: CategoryCallAction, Token: "VERIFY", Synonyms: []string{"verify", "verified", "confirm your identity", "security question"}},
		{Category: CategoryCallAction, Token: "SCHEDULE", Synonyms: []string{"schedule", "scheduled", "appointment", "technician visit", "book a"}},
		{Category: CategoryCallAction, Token: "TRANSFER", Synonyms: []string{"transfer you", "transferring you", "connect you with"}},

		// Resolution states (transcript encoding).
		{Category: CategoryResolution, Token: "RESOLVED", Synonyms: []string{"resolved", "sorted out", "taken care of", "all set", "fixed", "issue is closed", "processed your refund", "has been processed"}},
		{Category: CategoryResolution, Token: "PENDING", Synonyms: []string{"pending", "within 24 hours", "business days", "follow up", "will get back", "in progress", "being reviewed"}},
		{Category: CategoryResolution, Token: "ESCALATED", Synonyms: []string{"escalated to", "passed to", "raised with", "higher tier"}},
		{Category: CategoryResolution, Token: "UNRESOLVED", Synonyms: []string{"unresolved", "no resolution", "could not resolve", "nothing we can do", "call back later"}},

		// Sentiment states (transcript encoding).
		{Category: CategorySentiment, Token: "ANGRY", Synonyms: []string{"furious", "outraged", "ridiculous", "unacceptable", "fed up", "this is insane", "absurd", "demand"}},
		{Category: CategorySentiment, Token: "FRUSTRATED", Synonyms: []string{"frustrated", "frustrating", "annoyed", "annoying", "third time", "again and again", "tired of", "sick of", "upset"}},
		{Category: CategorySentiment, Token: "CONFUSED", Synonyms: []string{"confused", "don't understand", "do not understand", "makes no sense", "unclear", "what does that mean"}},
		{Category: CategorySentiment, Token: "WORRIED", Synonyms: []string{"worried", "concerned", "anxious", "afraid"}},
		{Category: CategorySentiment, Token: "SATISFIED", Synonyms: []string{"thank you", "thanks", "that works", "sounds good", "appreciate", "great help", "perfect"}},
		{Category: CategorySentiment, Token: "HAPPY", Synonyms: []string{"wonderful", "fantastic", "amazing", "excellent", "delighted", "you're the best"}},

		// Stop words and filler excluded from token matching.
		{Category: CategoryStopWord, Token: "STOP", Synonyms: []string{
			"the", "a", "an", "and", "or", "but", "in", "on", "at", "to", "for",
			"of", "with", "by", "from", "as", "is", "are", "was", "were", "be",
			"been", "being", "this", "that", "these", "those", "it", "its",
			"please", "kindly", "just", "very", "really", "some", "any",
		}},

		// Modal and auxiliary verbs never carry the requested operation.
		{Category: CategoryModalVerb, Token: "MODAL", Synonyms: []string{
			"can", "could", "may", "might", "must", "shall", "should", "will",
			"would", "do", "does", "did", "have", "has", "had", "need", "want",
			"like", "try", "help",
		}},
	}
}
