package service

import "github.com/petitspas/backend/internal/db"

// ContentDefaultsVersion identifies the fallback data set served when the
// store is unreachable or empty. Bump when the seed below changes.
const ContentDefaultsVersion = 3

// defaultContentEntries is the fixed key set per section. It seeds the
// store at startup and doubles as the public fallback content. The admin
// editor updates values only; keys are never created or deleted at
// runtime.
var defaultContentEntries = []db.ContentEntry{
	{Section: db.SectionHome, Key: "hero_title", Label: "Titre principal", Content: "Les Petits Pas"},
	{Section: db.SectionHome, Key: "hero_subtitle", Label: "Sous-titre", Content: "Soutenez nos petits pas vers de grandes victoires"},
	{Section: db.SectionHome, Key: "mission_title", Label: "Titre de la mission", Content: "Notre mission"},
	{Section: db.SectionHome, Key: "mission_text", Label: "Texte de la mission", Content: "Accompagner les enfants et leurs familles au quotidien, financer du matériel adapté et des séances spécialisées."},
	{Section: db.SectionHome, Key: "timeline_intro", Label: "Introduction de la frise", Content: "Découvrez le parcours des enfants que nous accompagnons."},
	{Section: db.SectionHome, Key: "contact_email", Label: "Email de contact", Content: "contact@lespetitspas.org"},
	{Section: db.SectionHome, Key: "contact_phone", Label: "Téléphone de contact", Content: ""},
	{Section: db.SectionActions, Key: "actions_intro", Label: "Introduction des actions", Content: "Chaque don finance des actions concrètes pour les enfants."},
	{Section: db.SectionActions, Key: "actions_equipment", Label: "Matériel adapté", Content: "Achat de matériel adapté : fauteuils, verticalisateurs, outils de communication."},
	{Section: db.SectionActions, Key: "actions_sessions", Label: "Séances spécialisées", Content: "Financement de séances non remboursées : ergothérapie, psychomotricité."},
	{Section: db.SectionTransparency, Key: "transparency_intro", Label: "Introduction transparence", Content: "Nous documentons l'usage de chaque don, en photos et en chiffres."},
	{Section: db.SectionTransparency, Key: "transparency_usage", Label: "Utilisation des dons", Content: "100% des dons sont reversés aux actions pour les enfants."},
}

// DefaultContentEntries returns the fallback entries for a section.
func DefaultContentEntries(section string) []db.ContentEntry {
	entries := make([]db.ContentEntry, 0, len(defaultContentEntries))
	for _, entry := range defaultContentEntries {
		if entry.Section == section {
			entries = append(entries, entry)
		}
	}
	return entries
}
