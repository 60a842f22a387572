package types

// ContextKey - тип ключей контекста команд
type ContextKey string

// ClientAppKey - ключ, под которым *client.App лежит в контексте команды
const ClientAppKey ContextKey = "app"
