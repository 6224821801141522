package code

// Generic codes.
var (
	Success              = NewSuss(0, lang{en: "Success", it: "Operazione completata"})
	ErrorInvalidParams   = NewError(1, lang{en: "Invalid request parameters", it: "Parametri della richiesta non validi"})
	ErrorServerInternal  = NewError(2, lang{en: "Internal server error", it: "Errore interno del server"})
	ErrorTooManyRequests = NewError(3, lang{en: "Too many requests", it: "Troppe richieste"})
	ErrorNotFound        = NewError(4, lang{en: "Resource not found", it: "Risorsa non trovata"})
)

// Auth codes. The Italian messages are the fixed per-operation banner
// prefixes shown to the user.
var (
	ErrorNotUserAuthToken     = NewError(100, lang{en: "Missing auth token", it: "Token di autenticazione mancante"})
	ErrorInvalidUserAuthToken = NewError(101, lang{en: "Invalid auth token", it: "Token di autenticazione non valido"})
	ErrorLogin                = NewError(102, lang{en: "Login failed", it: "Errore login"})
	ErrorRegister             = NewError(103, lang{en: "Registration failed", it: "Errore registrazione"})
	ErrorLogout               = NewError(104, lang{en: "Logout failed", it: "Errore logout"})
	ErrorUserNotFound         = NewError(105, lang{en: "User not found", it: "Utente non trovato"})
	ErrorUserEmailExists      = NewError(106, lang{en: "Email already registered", it: "Email già registrata"})
	ErrorUserPasswordFailed   = NewError(107, lang{en: "Wrong email or password", it: "Email o password errati"})
	ErrorPasswordNotValid     = NewError(108, lang{en: "Password not acceptable", it: "Password non valida"})
	ErrorRegisterDisabled     = NewError(109, lang{en: "Registration is disabled", it: "Registrazione disabilitata"})
)

// Note store codes.
var (
	ErrorNoteLoad          = NewError(200, lang{en: "Failed to load notes", it: "Errore caricamento note"})
	ErrorNoteSave          = NewError(201, lang{en: "Failed to save note", it: "Errore salvataggio"})
	ErrorNoteDelete        = NewError(202, lang{en: "Failed to delete note", it: "Errore eliminazione"})
	ErrorNoteNotFound      = NewError(203, lang{en: "Note not found", it: "Nota non trovata"})
	ErrorNoteValidation    = NewError(204, lang{en: "Title and text are required", it: "Titolo e testo sono obbligatori"})
	ErrorNoteDeleteConfirm = NewError(205, lang{en: "Confirmation required to delete the note", it: "Sei sicuro di voler eliminare questa nota?"})
	ErrorImageUpload       = NewError(206, lang{en: "Failed to upload image", it: "Errore caricamento immagine"})
	ErrorNoSession         = NewError(207, lang{en: "No active session", it: "Nessuna sessione attiva"})
)

// Storage codes.
var (
	ErrorInvalidStorageType = NewError(300, lang{en: "Invalid storage type", it: "Tipo di storage non valido"})
)
