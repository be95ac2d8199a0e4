package pkg

import "strings"

// Bilingual message catalog keyed by dotted path. Unknown keys return the
// key itself so missing entries are visible instead of silent.

var esMessages = map[string]string{
	"app.name":                 "Community Hub",
	"app.tagline":              "Conectando comunidades",
	"auth.ageError":            "Debes tener al menos 16 años",
	"auth.passwordMismatch":    "Las contraseñas no coinciden",
	"auth.invalidCredentials":  "Credenciales inválidas",
	"auth.emailTaken":          "El correo ya está registrado",
	"auth.codeSent":            "Código enviado",
	"auth.codeInvalid":         "Código incorrecto o expirado",
	"community.created":        "Comunidad creada",
	"community.joined":         "Te has unido a la comunidad",
	"community.pending":        "Solicitud pendiente de aprobación",
	"community.left":           "Has salido de la comunidad",
	"community.notFound":       "Comunidad no encontrada",
	"community.full":           "La comunidad ha alcanzado su límite de miembros",
	"community.memberCount":    "{{count}} miembros",
	"feed.postCreated":         "Publicación creada",
	"feed.postPendingApproval": "Tu publicación espera aprobación",
	"feed.emptyFields":         "Título y contenido son obligatorios",
	"feed.notMember":           "No eres miembro de esta comunidad",
	"events.created":           "Evento creado",
	"events.missingFields":     "Nombre y fecha de inicio son obligatorios",
	"events.full":              "El evento está completo",
	"events.rsvpSaved":         "Asistencia registrada",
	"polls.created":            "Encuesta creada",
	"polls.tooFewOptions":      "Se necesitan al menos 2 opciones",
	"polls.alreadyVoted":       "Ya has votado en esta encuesta",
	"polls.singleChoice":       "Esta encuesta admite una sola opción",
	"polls.voteSaved":          "Voto registrado",
	"settings.premiumUnlocked": "¡Temas desbloqueados!",
	"settings.invalidCode":     "Código inválido",
	"errors.generic":           "Algo salió mal, inténtalo de nuevo",
	"errors.unauthorized":      "Sesión no válida",
}

var frMessages = map[string]string{
	"app.name":                 "Community Hub",
	"app.tagline":              "Connecter les communautés",
	"auth.ageError":            "Vous devez avoir au moins 16 ans",
	"auth.passwordMismatch":    "Les mots de passe ne correspondent pas",
	"auth.invalidCredentials":  "Identifiants invalides",
	"auth.emailTaken":          "Cet e-mail est déjà enregistré",
	"auth.codeSent":            "Code envoyé",
	"auth.codeInvalid":         "Code incorrect ou expiré",
	"community.created":        "Communauté créée",
	"community.joined":         "Vous avez rejoint la communauté",
	"community.pending":        "Demande en attente d'approbation",
	"community.left":           "Vous avez quitté la communauté",
	"community.notFound":       "Communauté introuvable",
	"community.full":           "La communauté a atteint sa limite de membres",
	"community.memberCount":    "{{count}} membres",
	"feed.postCreated":         "Publication créée",
	"feed.postPendingApproval": "Votre publication attend une approbation",
	"feed.emptyFields":         "Le titre et le contenu sont obligatoires",
	"feed.notMember":           "Vous n'êtes pas membre de cette communauté",
	"events.created":           "Événement créé",
	"events.missingFields":     "Le nom et la date de début sont obligatoires",
	"events.full":              "L'événement est complet",
	"events.rsvpSaved":         "Présence enregistrée",
	"polls.created":            "Sondage créé",
	"polls.tooFewOptions":      "Au moins 2 options sont nécessaires",
	"polls.alreadyVoted":       "Vous avez déjà voté dans ce sondage",
	"polls.singleChoice":       "Ce sondage n'admet qu'une seule option",
	"polls.voteSaved":          "Vote enregistré",
	"settings.premiumUnlocked": "Thèmes débloqués !",
	"settings.invalidCode":     "Code invalide",
	"errors.generic":           "Une erreur est survenue, réessayez",
	"errors.unauthorized":      "Session invalide",
}

// T resolves a message key for the given language ("es" or "fr", anything
// else falls back to es) and interpolates {{param}} placeholders.
func T(lang, key string, params map[string]string) string {
	table := esMessages
	if lang == "fr" {
		table = frMessages
	}
	msg, ok := table[key]
	if !ok {
		if msg, ok = esMessages[key]; !ok {
			return key
		}
	}
	for k, v := range params {
		msg = strings.ReplaceAll(msg, "{{"+k+"}}", v)
	}
	return msg
}
