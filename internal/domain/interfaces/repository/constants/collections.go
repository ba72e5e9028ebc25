package constants

const (
	CHATS_COLLECTION        = "chats"
	COMPANY_INFO_COLLECTION = "companyInfo"

	CHAT_KEY_PREFIX         = "chat:"
	COMPANY_INFO_KEY_PREFIX = "companyInfo:"

	CHATS_TABLE        = "chats"
	COMPANY_INFO_TABLE = "company_info"
)
