package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/brewflow-pos/internal/application/dto"
	"github.com/jhoicas/brewflow-pos/internal/domain/access"
	"github.com/jhoicas/brewflow-pos/pkg/jwt"
)

// Locals keys para los datos del usuario autenticado en Fiber.
const (
	LocalUserID    = "user_id"
	LocalUserEmail = "user_email"
	LocalUserName  = "user_name"
	LocalRole      = "user_role"
)

// AuthMiddleware valida el Bearer Token JWT y extrae los datos del usuario a c.Locals.
func AuthMiddleware(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "Authorization header requerido"})
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "formato: Bearer <token>"})
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "token vacío"})
		}
		claims, err := jwt.Parse(jwtSecret, tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "token inválido o expirado"})
		}
		c.Locals(LocalUserID, claims.UserID)
		c.Locals(LocalUserEmail, claims.Email)
		c.Locals(LocalUserName, claims.Name)
		c.Locals(LocalRole, claims.Role)
		return c.Next()
	}
}

// RequireRole autoriza la petición evaluando la misma máquina de decisiones
// que protege las páginas (access.Evaluate) sobre un snapshot construido desde
// los locals del AuthMiddleware. Debe usarse DESPUÉS de AuthMiddleware.
//
// Comportamiento:
//   - 401 MISSING_ROLE  → token sin claim de rol (token legacy).
//   - 401 UNAUTHENTICATED → no hay usuario en el contexto.
//   - 403 FORBIDDEN → el rol no está en el conjunto permitido; el mensaje
//     nombra el rol actual y los requeridos, igual que la pantalla de
//     acceso denegado.
func RequireRole(allowedRoles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		snap := snapshotFromLocals(c)
		if snap.User != nil && snap.Role == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Code:    "MISSING_ROLE",
				Message: "el token no incluye rol; inicie sesión de nuevo",
			})
		}
		switch access.Evaluate(snap, allowedRoles) {
		case access.DecisionAuthorized:
			return c.Next()
		case access.DecisionUnauthorized:
			role := snap.Role
			if role == "" {
				role = "None"
			}
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
				Code:    "FORBIDDEN",
				Message: "acceso denegado. Su rol: " + role + ". Requerido: " + strings.Join(allowedRoles, ", "),
			})
		default:
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Code:    "UNAUTHENTICATED",
				Message: "se requiere sesión activa",
			})
		}
	}
}

// snapshotFromLocals arma el IdentitySnapshot equivalente a lo que el
// proveedor de identidad reportaría para esta petición ya autenticada.
func snapshotFromLocals(c *fiber.Ctx) access.IdentitySnapshot {
	userID := localString(c, LocalUserID)
	if userID == "" {
		return access.IdentitySnapshot{}
	}
	return access.IdentitySnapshot{
		User: &access.Identity{
			ID:    userID,
			Email: localString(c, LocalUserEmail),
			Name:  localString(c, LocalUserName),
		},
		Role: localString(c, LocalRole),
	}
}

func localString(c *fiber.Ctx, key string) string {
	v := c.Locals(key)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}

// GetUserID devuelve el UserID del contexto (después del middleware de auth).
func GetUserID(c *fiber.Ctx) string {
	return localString(c, LocalUserID)
}

// GetRole devuelve el rol del contexto (después del middleware de auth).
func GetRole(c *fiber.Ctx) string {
	return localString(c, LocalRole)
}
