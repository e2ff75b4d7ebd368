// Command admin_seed mints a bearer token for the admin API from ADMIN_JWT_SECRET.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"paygate/internal/config"
	"paygate/internal/models"
	"paygate/internal/utils"
)

func main() {
	config.LoadEnv()

	role := flag.String("role", models.RoleSuperAdmin, "admin role (super_admin or admin)")
	perms := flag.String("permissions", "", "comma separated permissions for the admin role")
	ttl := flag.Duration("ttl", 12*time.Hour, "token lifetime")
	flag.Parse()

	adminID := os.Getenv("ADMIN_USER_ID")
	adminEmail := os.Getenv("ADMIN_EMAIL")
	if adminID == "" || adminEmail == "" {
		log.Fatal("ADMIN_USER_ID and ADMIN_EMAIL must be set in environment")
	}

	claims := models.AdminClaims{
		UserID: adminID,
		Email:  adminEmail,
		Role:   *role,
	}
	if *perms != "" {
		claims.Permissions = strings.Split(*perms, ",")
	}

	token, err := utils.GenerateAdminToken(claims, config.GetEnv("ADMIN_JWT_SECRET", ""), *ttl)
	if err != nil {
		log.Fatalf("Failed to sign admin token: %v", err)
	}

	log.Printf("✅ Admin token issued for %s (%s), expires in %s", adminEmail, *role, *ttl)
	fmt.Println(token)
}
