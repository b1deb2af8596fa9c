package nlu

// Intent is the classified purpose of one user utterance.
type Intent struct {
	Name     string
	Topic    string            // only set for GetInfo
	Entities map[string]string // e.g. "task", "time"
}

// Intent names. Classify always returns one of these.
const (
	IntentGetInfo         = "GetInfo"
	IntentCreateTask      = "CreateTask"
	IntentListTasks       = "ListTasks"
	IntentStartQuiz       = "StartQuiz"
	IntentStopQuiz        = "StopQuiz"
	IntentViewLog         = "ViewLog"
	IntentViewMoreLog     = "ViewMoreLog"
	IntentRecallMemory    = "RecallMemory"
	IntentAcknowledgeInfo = "AcknowledgeInfo"
	IntentGreeting        = "Greeting"
	IntentThankYou        = "ThankYou"
	IntentHelp            = "Help"
	IntentConfirm         = "Confirm"
	IntentDeny            = "Deny"
	IntentFallback        = "Fallback"
)

// Topic names for GetInfo.
const (
	TopicPassword      = "Password"
	TopicTwoFactorAuth = "TwoFactorAuth"
	TopicPhishing      = "Phishing"
	TopicMalware       = "Malware"
	TopicRansomware    = "Ransomware"
	TopicVirus         = "Virus"
	TopicVPN           = "VPN"
	TopicWiFiSecurity  = "WiFiSecurity"
	TopicHTTPS         = "HTTPS"
	TopicDataBreach    = "DataBreach"
	TopicEncryption    = "Encryption"
)
