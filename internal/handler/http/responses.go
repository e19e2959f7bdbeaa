package http

// Response envelopes of the public API. The field names and the Slovak
// messages are part of the published contract and must not drift.

type dbErrorResponse struct {
	DBError string `json:"dbError"`
	Details string `json:"details"`
}

type signUpErrorResponse struct {
	SignUpError string `json:"signUpError"`
}

type loginErrorResponse struct {
	LoginError string `json:"loginError"`
}

type errorResponse struct {
	Error string `json:"error"`
}

type messageResponse struct {
	Message string `json:"message"`
}

const (
	msgLiveness = "Server spusteny!"

	msgListingDBError = "Nie je možné načítať údaje z databázy"

	msgSignUpMissingFields = "Prosím, vyplňte všetky polia"
	msgSignUpDuplicate     = "Užívateľské meno alebo email už existuje"
	msgSignUpDBError       = "Nie je možné zaregistrovať sa(Chyba databázy)"

	msgLoginWrongEmail    = "Nesprávny email"
	msgLoginWrongPassword = "Nesprávne heslo"
	msgLoginDBError       = "Nie je možné prihlásiť sa"

	msgReportMissingFields = "Všetky polia sú povinné"
	msgReportUnknownUser   = "Neplatný používateľ"
	msgReportCreated       = "Hlásenie bolo vytvorené"
	msgReportUpdated       = "Hlásenie bolo aktualizované"
	msgReportDBError       = "Nie je možné spracovať hlásenie, chyba databazy"
)
