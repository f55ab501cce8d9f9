package api

import (
	"context"
	"net/http"

	"connectrpc.com/connect"
)

const (
	AuthServiceName = "billed.v1.AuthService"
	BillServiceName = "billed.v1.BillService"
)

const (
	AuthServiceLoginProcedure      = "/billed.v1.AuthService/Login"
	AuthServiceCreateUserProcedure = "/billed.v1.AuthService/CreateUser"
	BillServiceListBillsProcedure  = "/billed.v1.BillService/ListBills"
	BillServiceCreateBillProcedure = "/billed.v1.BillService/CreateBill"
	BillServiceUpdateBillProcedure = "/billed.v1.BillService/UpdateBill"
)

// AuthServiceHandler is implemented by the backend authentication service.
type AuthServiceHandler interface {
	Login(context.Context, *connect.Request[LoginRequest]) (*connect.Response[LoginResponse], error)
	CreateUser(context.Context, *connect.Request[CreateUserRequest]) (*connect.Response[CreateUserResponse], error)
}

// BillServiceHandler is implemented by the backend bill service.
type BillServiceHandler interface {
	ListBills(context.Context, *connect.Request[ListBillsRequest]) (*connect.Response[ListBillsResponse], error)
	CreateBill(context.Context, *connect.Request[CreateBillRequest]) (*connect.Response[CreateBillResponse], error)
	UpdateBill(context.Context, *connect.Request[UpdateBillRequest]) (*connect.Response[UpdateBillResponse], error)
}

func handlerOptions(opts []connect.HandlerOption) []connect.HandlerOption {
	return append([]connect.HandlerOption{connect.WithCodec(Codec{})}, opts...)
}

func clientOptions(opts []connect.ClientOption) []connect.ClientOption {
	return append([]connect.ClientOption{connect.WithCodec(Codec{})}, opts...)
}

// NewAuthServiceHandler returns the mount path and handler for svc.
func NewAuthServiceHandler(svc AuthServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = handlerOptions(opts)
	login := connect.NewUnaryHandler(AuthServiceLoginProcedure, svc.Login, opts...)
	createUser := connect.NewUnaryHandler(AuthServiceCreateUserProcedure, svc.CreateUser, opts...)

	return "/" + AuthServiceName + "/", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case AuthServiceLoginProcedure:
			login.ServeHTTP(w, r)
		case AuthServiceCreateUserProcedure:
			createUser.ServeHTTP(w, r)
		default:
			http.NotFound(w, r)
		}
	})
}

// NewBillServiceHandler returns the mount path and handler for svc.
func NewBillServiceHandler(svc BillServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = handlerOptions(opts)
	list := connect.NewUnaryHandler(BillServiceListBillsProcedure, svc.ListBills, opts...)
	create := connect.NewUnaryHandler(BillServiceCreateBillProcedure, svc.CreateBill, opts...)
	update := connect.NewUnaryHandler(BillServiceUpdateBillProcedure, svc.UpdateBill, opts...)

	return "/" + BillServiceName + "/", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case BillServiceListBillsProcedure:
			list.ServeHTTP(w, r)
		case BillServiceCreateBillProcedure:
			create.ServeHTTP(w, r)
		case BillServiceUpdateBillProcedure:
			update.ServeHTTP(w, r)
		default:
			http.NotFound(w, r)
		}
	})
}

// AuthServiceClient calls the authentication service.
type AuthServiceClient interface {
	Login(context.Context, *connect.Request[LoginRequest]) (*connect.Response[LoginResponse], error)
	CreateUser(context.Context, *connect.Request[CreateUserRequest]) (*connect.Response[CreateUserResponse], error)
}

// BillServiceClient calls the bill service.
type BillServiceClient interface {
	ListBills(context.Context, *connect.Request[ListBillsRequest]) (*connect.Response[ListBillsResponse], error)
	CreateBill(context.Context, *connect.Request[CreateBillRequest]) (*connect.Response[CreateBillResponse], error)
	UpdateBill(context.Context, *connect.Request[UpdateBillRequest]) (*connect.Response[UpdateBillResponse], error)
}

type authServiceClient struct {
	login      *connect.Client[LoginRequest, LoginResponse]
	createUser *connect.Client[CreateUserRequest, CreateUserResponse]
}

func NewAuthServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) AuthServiceClient {
	opts = clientOptions(opts)
	return &authServiceClient{
		login:      connect.NewClient[LoginRequest, LoginResponse](httpClient, baseURL+AuthServiceLoginProcedure, opts...),
		createUser: connect.NewClient[CreateUserRequest, CreateUserResponse](httpClient, baseURL+AuthServiceCreateUserProcedure, opts...),
	}
}

func (c *authServiceClient) Login(ctx context.Context, req *connect.Request[LoginRequest]) (*connect.Response[LoginResponse], error) {
	return c.login.CallUnary(ctx, req)
}

func (c *authServiceClient) CreateUser(ctx context.Context, req *connect.Request[CreateUserRequest]) (*connect.Response[CreateUserResponse], error) {
	return c.createUser.CallUnary(ctx, req)
}

type billServiceClient struct {
	list   *connect.Client[ListBillsRequest, ListBillsResponse]
	create *connect.Client[CreateBillRequest, CreateBillResponse]
	update *connect.Client[UpdateBillRequest, UpdateBillResponse]
}

func NewBillServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) BillServiceClient {
	opts = clientOptions(opts)
	return &billServiceClient{
		list:   connect.NewClient[ListBillsRequest, ListBillsResponse](httpClient, baseURL+BillServiceListBillsProcedure, opts...),
		create: connect.NewClient[CreateBillRequest, CreateBillResponse](httpClient, baseURL+BillServiceCreateBillProcedure, opts...),
		update: connect.NewClient[UpdateBillRequest, UpdateBillResponse](httpClient, baseURL+BillServiceUpdateBillProcedure, opts...),
	}
}

func (c *billServiceClient) ListBills(ctx context.Context, req *connect.Request[ListBillsRequest]) (*connect.Response[ListBillsResponse], error) {
	return c.list.CallUnary(ctx, req)
}

func (c *billServiceClient) CreateBill(ctx context.Context, req *connect.Request[CreateBillRequest]) (*connect.Response[CreateBillResponse], error) {
	return c.create.CallUnary(ctx, req)
}

func (c *billServiceClient) UpdateBill(ctx context.Context, req *connect.Request[UpdateBillRequest]) (*connect.Response[UpdateBillResponse], error) {
	return c.update.CallUnary(ctx, req)
}
