package i18n

// translations maps locale -> error code (or message key) -> display text.
// Every code a service can emit must have an "en" entry; other locales may
// lag behind and fall back to "en".
var translations = map[string]map[string]string{
	"en": {
		// auth
		"EMAIL_ALREADY_EXISTS": "An account with this email already exists",
		"WEAK_PASSWORD":        "Password must be at least 8 characters long",
		"INVALID_EMAIL_FORMAT": "Email address is not valid",
		"REGISTRATION_FAILED":  "Registration failed, please try again later",
		"INVALID_CREDENTIALS":  "Invalid email or password",
		"ACCOUNT_INACTIVE":     "This account has been deactivated",
		"UNAUTHORIZED":         "You are not authorized to perform this action",
		"FORBIDDEN":            "You do not have permission to access this resource",

		// users
		"USER_NOT_FOUND":             "User not found",
		"USER_EMAIL_ALREADY_EXISTS":  "A user with this email already exists",
		"INVALID_USER_DATA":          "User data is invalid or incomplete",
		"USER_CREATED_SUCCESSFULLY":  "User created successfully",
		"USER_UPDATED_SUCCESSFULLY":  "User updated successfully",
		"USER_DELETED_SUCCESSFULLY":  "User deleted successfully",
		"USERS_DELETED_SUCCESSFULLY": "Users deleted successfully",

		// customers
		"CUSTOMER_NOT_FOUND":      "Customer not found",
		"CUSTOMER_ALREADY_EXISTS": "A customer record already exists for this user",
		"INVALID_CUSTOMER_DATA":   "Customer data is invalid or incomplete",

		// destinations
		"DESTINATION_NOT_FOUND":              "Destination not found",
		"DESTINATION_COUNTRY_ALREADY_EXISTS": "A destination for this country already exists",
		"INVALID_DESTINATION_DATA":           "Destination data is invalid or incomplete",

		// packages
		"PACKAGE_NOT_FOUND":     "Travel package not found",
		"INVALID_PACKAGE_DATA":  "Package data is invalid or incomplete",
		"PACKAGE_NOT_AVAILABLE": "This package is not available for the requested date",

		// bookings
		"BOOKING_NOT_FOUND":    "Booking not found",
		"INVALID_BOOKING_DATA": "Booking data is invalid or incomplete",

		// payments
		"PAYMENT_NOT_FOUND":    "Payment not found",
		"INVALID_PAYMENT_DATA": "Payment data is invalid or incomplete",

		// notifications
		"NOTIFICATION_NOT_FOUND":    "Notification not found",
		"INVALID_NOTIFICATION_DATA": "Notification data is invalid or incomplete",

		// uploads
		"INVALID_UPLOAD_DATA":   "No file was provided",
		"UNSUPPORTED_FILE_TYPE": "Only image files are accepted",
		"UPLOAD_FAILED":         "The file could not be stored",
		"FILE_NOT_FOUND":        "File not found",
		"DELETE_FAILED":         "The file could not be deleted",

		// generic
		"INTERNAL_ERROR": "An unexpected error occurred",
	},
	"fr": {
		// auth
		"EMAIL_ALREADY_EXISTS": "Un compte avec cet email existe déjà",
		"WEAK_PASSWORD":        "Le mot de passe doit contenir au moins 8 caractères",
		"INVALID_EMAIL_FORMAT": "L'adresse email n'est pas valide",
		"REGISTRATION_FAILED":  "L'inscription a échoué, veuillez réessayer plus tard",
		"INVALID_CREDENTIALS":  "Email ou mot de passe invalide",
		"ACCOUNT_INACTIVE":     "Ce compte a été désactivé",
		"UNAUTHORIZED":         "Vous n'êtes pas autorisé à effectuer cette action",
		"FORBIDDEN":            "Vous n'avez pas la permission d'accéder à cette ressource",

		// users
		"USER_NOT_FOUND":             "Utilisateur introuvable",
		"USER_EMAIL_ALREADY_EXISTS":  "Un utilisateur avec cet email existe déjà",
		"INVALID_USER_DATA":          "Les données utilisateur sont invalides ou incomplètes",
		"USER_CREATED_SUCCESSFULLY":  "Utilisateur créé avec succès",
		"USER_UPDATED_SUCCESSFULLY":  "Utilisateur mis à jour avec succès",
		"USER_DELETED_SUCCESSFULLY":  "Utilisateur supprimé avec succès",
		"USERS_DELETED_SUCCESSFULLY": "Utilisateurs supprimés avec succès",

		// customers
		"CUSTOMER_NOT_FOUND":      "Client introuvable",
		"CUSTOMER_ALREADY_EXISTS": "Une fiche client existe déjà pour cet utilisateur",
		"INVALID_CUSTOMER_DATA":   "Les données client sont invalides ou incomplètes",

		// destinations
		"DESTINATION_NOT_FOUND":              "Destination introuvable",
		"DESTINATION_COUNTRY_ALREADY_EXISTS": "Une destination pour ce pays existe déjà",
		"INVALID_DESTINATION_DATA":           "Les données de destination sont invalides ou incomplètes",

		// packages
		"PACKAGE_NOT_FOUND":     "Forfait de voyage introuvable",
		"INVALID_PACKAGE_DATA":  "Les données du forfait sont invalides ou incomplètes",
		"PACKAGE_NOT_AVAILABLE": "Ce forfait n'est pas disponible pour la date demandée",

		// bookings
		"BOOKING_NOT_FOUND":    "Réservation introuvable",
		"INVALID_BOOKING_DATA": "Les données de réservation sont invalides ou incomplètes",

		// payments
		"PAYMENT_NOT_FOUND":    "Paiement introuvable",
		"INVALID_PAYMENT_DATA": "Les données de paiement sont invalides ou incomplètes",

		// notifications
		"NOTIFICATION_NOT_FOUND":    "Notification introuvable",
		"INVALID_NOTIFICATION_DATA": "Les données de notification sont invalides ou incomplètes",

		// uploads
		"INVALID_UPLOAD_DATA":   "Aucun fichier n'a été fourni",
		"UNSUPPORTED_FILE_TYPE": "Seuls les fichiers image sont acceptés",
		"UPLOAD_FAILED":         "Le fichier n'a pas pu être enregistré",
		"FILE_NOT_FOUND":        "Fichier introuvable",
		"DELETE_FAILED":         "Le fichier n'a pas pu être supprimé",

		// generic
		"INTERNAL_ERROR": "Une erreur inattendue s'est produite",
	},
}
