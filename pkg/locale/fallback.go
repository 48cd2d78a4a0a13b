package locale

import "orchardlog/entities"

// Fallback identifies a canned advisory reply.
type Fallback int

const (
	InsightsEmpty Fallback = iota
	InsightsUnavailable
	ChatEmpty
	ChatUnavailable
	// NoLogs is shown instead of asking for insights when the selection is empty.
	NoLogs
)

var fallbacks = map[Fallback]entities.Label{
	InsightsEmpty:       {EN: "Unable to generate insights at this time.", TR: "Şu anda analiz oluşturulamıyor."},
	InsightsUnavailable: {EN: "Service temporarily unavailable.", TR: "Servis geçici olarak kullanılamıyor."},
	ChatEmpty:           {EN: "I couldn't process that request.", TR: "İsteğinizi işleyemedim."},
	ChatUnavailable:     {EN: "I encountered an error trying to answer your question.", TR: "Sorunuzu yanıtlarken bir hatayla karşılaştım."},
	NoLogs:              {EN: "No logs yet. Record some orchard work to get insights.", TR: "Henüz kayıt yok. Analiz almak için bahçe çalışmalarınızı kaydedin."},
}

func Text(f Fallback, lang entities.Language) string {
	return fallbacks[f].In(lang)
}
