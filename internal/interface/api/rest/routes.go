package rest

const (
	// api
	RouteApiV1 = "/api/v1"

	// auth
	RouteAuth  = RouteApiV1 + "/auth"
	RouteLogin = RouteAuth + "/login"

	// users
	RouteUsers        = RouteApiV1 + "/users"
	RouteUserRegister = RouteUsers + "/register"
	RouteUser         = RouteUsers + "/:username"
	RouteMe           = RouteApiV1 + "/me"

	// modalidades
	RouteModalidades = RouteApiV1 + "/modalidades"

	// atividades
	RouteAtividades         = RouteApiV1 + "/atividades"
	RouteAtividadesProximas = RouteAtividades + "/proximas"
	RouteAtividade          = RouteAtividades + "/:atividade_id"
	RouteAtividadeInscrever = RouteAtividade + "/inscrever"

	// ops
	RouteHealth  = RouteApiV1 + "/healthz"
	RouteMetrics = RouteApiV1 + "/metrics"
)
