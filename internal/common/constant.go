package common

// AccessTokenHeaderName is the gRPC metadata key used to carry the
// access token on outbound requests.
const AccessTokenHeaderName = "access_token"

// RoleCustomer is assigned to every self-registered user.
const RoleCustomer = "Customer"

// RoleAdmin may manage the reward catalog.
const RoleAdmin = "Admin"
