package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"

	"estatecrm/internal/database"
	"estatecrm/internal/domain/activity"
	"estatecrm/internal/domain/agent"
	"estatecrm/internal/domain/booking"
	"estatecrm/internal/domain/client"
	"estatecrm/internal/domain/enquiry"
	"estatecrm/internal/domain/lead"
	"estatecrm/internal/domain/note"
	"estatecrm/internal/domain/notification"
	"estatecrm/internal/domain/ownership"
	"estatecrm/internal/domain/property"
	"estatecrm/internal/domain/sale"
	"estatecrm/internal/pkg/dbtypes"
	"estatecrm/internal/pkg/policy"
)

func main() {
	_ = godotenv.Load()

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		dsn = "estatecrm.db"
	}

	db, err := database.Connect(dsn)
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	log.Println("Running AutoMigrate...")
	if err := db.AutoMigrate(
		&agent.Agent{},
		&client.Client{},
		&property.Property{},
		&enquiry.Enquiry{},
		&lead.Lead{},
		&booking.Booking{},
		&sale.Sale{},
		&sale.Installment{},
		&note.Note{},
		&activity.Activity{},
		&notification.Notification{},
	); err != nil {
		log.Fatal("AutoMigrate failed:", err)
	}

	// AutoMigrate cannot express the one-active-reservation-per-unit index
	if err := booking.EnsureReservationIndex(db); err != nil {
		log.Fatal("reservation index failed:", err)
	}

	// Cleanup old data (children first to keep foreign keys happy)
	log.Println("Cleaning old data...")
	db.Exec("DELETE FROM notifications")
	db.Exec("DELETE FROM activities")
	db.Exec("DELETE FROM notes")
	db.Exec("DELETE FROM sale_installments")
	db.Exec("DELETE FROM sales")
	db.Exec("DELETE FROM bookings")
	db.Exec("DELETE FROM leads")
	db.Exec("DELETE FROM enquiries")
	db.Exec("DELETE FROM clients")
	db.Exec("DELETE FROM properties")
	db.Exec("DELETE FROM agents")

	// ================== AGENTS ==================
	log.Println("Creating agents...")

	adminHash, _ := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	admin := agent.Agent{
		Email:        "admin@estatecrm.ae",
		PasswordHash: string(adminHash),
		Name:         "Admin",
		Role:         policy.RoleAdmin,
		Office:       "Dubai Marina",
		IsActive:     true,
	}
	db.Create(&admin)
	log.Println("Admin created: admin@estatecrm.ae / admin123")

	managerHash, _ := bcrypt.GenerateFromPassword([]byte("manager123"), bcrypt.DefaultCost)
	manager := agent.Agent{
		Email:        "manager@estatecrm.ae",
		PasswordHash: string(managerHash),
		Name:         "Saule Bekova",
		Role:         policy.RoleSalesManager,
		Office:       "Dubai Marina",
		IsActive:     true,
	}
	db.Create(&manager)

	agents := make([]agent.Agent, 0, 3)
	names := []string{"Dana Akhmetova", "Omar Haddad", "Elena Petrova"}
	for i, name := range names {
		hash, _ := bcrypt.GenerateFromPassword([]byte("agent123"), bcrypt.DefaultCost)
		a := agent.Agent{
			Email:        fmt.Sprintf("agent%d@estatecrm.ae", i+1),
			PasswordHash: string(hash),
			Name:         name,
			Phone:        fmt.Sprintf("+971 50 123 45%02d", i+10),
			Role:         policy.RoleSalesAgent,
			Office:       "Dubai Marina",
			IsActive:     true,
		}
		db.Create(&a)
		agents = append(agents, a)
	}

	// ================== PROPERTIES ==================
	log.Println("Creating properties...")

	properties := []property.Property{
		{Title: "Marina Vista 2BR", Project: "Marina Vista", Type: property.TypeApartment, Price: 2450000, Location: "Dubai Marina", Bedrooms: 2, Status: property.StatusAvailable},
		{Title: "Palm Hills Villa 5BR", Project: "Palm Hills", Type: property.TypeVilla, Price: 8900000, Location: "Palm Jumeirah", Bedrooms: 5, Status: property.StatusAvailable},
		{Title: "Creek Harbour 1BR", Project: "Creek Harbour", Type: property.TypeApartment, Price: 1350000, Location: "Dubai Creek", Bedrooms: 1, Status: property.StatusAvailable},
		{Title: "Arabian Ranches TH", Project: "Arabian Ranches", Type: property.TypeTownhouse, Price: 3200000, Location: "Arabian Ranches", Bedrooms: 3, Status: property.StatusAvailable},
	}
	for i := range properties {
		db.Create(&properties[i])
	}

	// ================== ENQUIRIES ==================
	log.Println("Creating enquiries...")

	enquiries := []enquiry.Enquiry{
		{
			Name: "Aigerim Tulegenova", Email: "aigerim@example.com", Phone: "+7 701 555 0101",
			Source: enquiry.SourceWebsite, Status: enquiry.StatusAssigned,
			Segment: "2m-3m", Tags: dbtypes.Tags{"Investor"},
			OwnerAgentID: &agents[0].ID,
		},
		{
			Name: "James Whitfield", Email: "j.whitfield@example.co.uk",
			Source: enquiry.SourcePortal, Status: enquiry.StatusNew,
			Segment: "1m-2m", Pool: ownership.Pool1,
		},
		{
			Name: "Fatima Al Mansouri", Phone: "+971 55 222 3344",
			Source: enquiry.SourceReferral, Status: enquiry.StatusContacted,
			Segment: "8m+", Tags: dbtypes.Tags{"VIP", "Cash buyer"},
			OwnerAgentID: &agents[1].ID,
		},
		{
			Name: "Viktor Sokolov", Email: "v.sokolov@example.ru",
			Source: enquiry.SourceCampaign, Status: enquiry.StatusNew,
			Pool: ownership.Pool2,
		},
	}
	for i := range enquiries {
		db.Create(&enquiries[i])
	}

	// ================== CLIENTS + LEADS ==================
	log.Println("Creating clients and leads...")

	buyer := client.Client{
		Name:        "Nurlan Suleimenov",
		Email:       "nurlan@example.com",
		Phone:       "+7 777 888 9900",
		Nationality: "Kazakh",
		Country:     "KZ",
		BudgetRange: "2m-3m",
	}
	db.Create(&buyer)

	l := lead.Lead{
		LeadNumber:     lead.NewNumber(),
		Title:          "Marina Vista 2BR for Nurlan",
		ClientID:       buyer.ID,
		PropertyID:     &properties[0].ID,
		Stage:          lead.StageViewingArranged,
		EstimatedValue: 2450000,
		BudgetRange:    "2m-3m",
		OwnerAgentID:   &agents[0].ID,
	}
	db.Create(&l)

	viewingAt := time.Now().AddDate(0, 0, 3)
	db.Create(&booking.Booking{
		ClientID:    buyer.ID,
		PropertyID:  properties[0].ID,
		AgentID:     agents[0].ID,
		Kind:        booking.KindViewing,
		Status:      booking.StatusConfirmed,
		ScheduledAt: &viewingAt,
	})

	db.Create(&note.Note{
		LeadID:      &l.ID,
		AuthorID:    agents[0].ID,
		ContactType: note.ContactCall,
		Content:     "Confirmed Saturday viewing, bringing spouse",
	})

	log.Println("Seed complete")
}
