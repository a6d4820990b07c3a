package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"gorm.io/gorm"

	"machinehub/internal/auth"
	"machinehub/internal/cache"
	"machinehub/internal/config"
	"machinehub/internal/db"
	"machinehub/internal/model"
	"machinehub/internal/notify"
	"machinehub/internal/repository"
	"machinehub/internal/service"
)

const usage = `Usage: seed [init|sample|reset|full]
  init   - create tables only
  sample - add sample data
  reset  - drop and recreate tables
  full   - reset database and add sample data`

func main() {
	if len(os.Args) < 2 {
		fmt.Println(usage)
		os.Exit(2)
	}
	command := os.Args[1]

	cfg := config.Load()

	gormDB, err := db.Open(cfg.DBDriver, cfg.DatabaseDSN, db.Options{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Connected to database")

	switch command {
	case "init":
		err = db.Migrate(gormDB)
	case "sample":
		err = seedSample(gormDB, cfg)
	case "reset":
		err = db.Reset(gormDB)
	case "full":
		if err = db.Reset(gormDB); err == nil {
			err = seedSample(gormDB, cfg)
		}
	default:
		fmt.Println(usage)
		os.Exit(2)
	}
	if err != nil {
		log.Fatalf("%s failed: %v", command, err)
	}
	log.Printf("%s completed", command)
}

type sampleUser struct {
	name, email, password string
	role                  model.Role
}

var sampleUsers = []sampleUser{
	{"Admin User", "admin@b2b.com", "admin123", model.RoleAdmin},
	{"Tech Machines Pvt Ltd", "supplier1@techmachines.com", "supplier123", model.RoleSupplier},
	{"Industrial Solutions", "supplier2@industrial.com", "supplier123", model.RoleSupplier},
	{"ABC Manufacturing", "buyer1@abcmanufacturing.com", "buyer123", model.RoleBuyer},
	{"XYZ Industries", "buyer2@xyzindustries.com", "buyer123", model.RoleBuyer},
}

// sampleMachines are listed by supplier email.
var sampleMachines = []struct {
	supplier string
	input    service.MachineInput
}{
	{"supplier1@techmachines.com", service.MachineInput{
		Name:                "CNC Milling Machine DMG MORI",
		Category:            "CNC Machines",
		UseCase:             "Precision Metal Cutting and Drilling",
		PriceRange:          "₹15,00,000 - ₹25,00,000",
		Description:         "High-precision CNC milling machine with 3-axis control. Suitable for aerospace, automotive, and general engineering applications. Features include automatic tool changer, coolant system, and digital readout.",
		ImageFront:          placeholder("CNC+Front+View"),
		ImageSide:           placeholder("CNC+Side+View"),
		ImageWorking:        placeholder("CNC+Working"),
		ImageCloseup:        placeholder("CNC+Closeup"),
		ProductionCapacity:  "500-1000 units per 8-hour shift",
		AutomationLevel:     "Semi-Automatic",
		PowerRequirement:    "440V, 3 Phase, 15 kW",
		MachineDimensions:   "12ft × 8ft × 6ft (L×W×H)",
		RawMaterial:         "Mild Steel, Stainless Steel, Aluminum",
		OperatorSkill:       "Semi-skilled technician required",
		WarrantyInfo:        "1 year manufacturer warranty + service support",
		IdealIndustry:       "Automotive, Aerospace, General Engineering",
		BusinessSizeFit:     "Medium Unit (50-200 employees)",
		InstallationSupport: true,
	}},
	{"supplier1@techmachines.com", service.MachineInput{
		Name:                "Lathe Machine Harrison M250",
		Category:            "Lathe Machines",
		UseCase:             "Metal Turning and Shaping",
		PriceRange:          "₹8,00,000 - ₹12,00,000",
		Description:         "Professional grade lathe machine perfect for small to medium-sized workshops. Features variable speed control, digital display, and high precision spindle. Ideal for batch production and custom machining.",
		ImageFront:          placeholder("Lathe+Front+View"),
		ImageSide:           placeholder("Lathe+Side+View"),
		ImageWorking:        placeholder("Lathe+Working"),
		ImageCloseup:        placeholder("Lathe+Closeup"),
		ProductionCapacity:  "300-600 units per 8-hour shift",
		AutomationLevel:     "Manual",
		PowerRequirement:    "440V, 3 Phase, 7.5 kW",
		MachineDimensions:   "8ft × 4ft × 5ft (L×W×H)",
		RawMaterial:         "Mild Steel, Brass, Aluminum",
		OperatorSkill:       "Skilled operator required",
		WarrantyInfo:        "2 years manufacturer warranty",
		IdealIndustry:       "Metal Fabrication, Automotive Parts",
		BusinessSizeFit:     "Small MSME (10-50 employees)",
		InstallationSupport: true,
	}},
	{"supplier2@industrial.com", service.MachineInput{
		Name:                "Hydraulic Press Machine 100 Ton",
		Category:            "Press Machines",
		UseCase:             "Metal Forming and Stamping",
		PriceRange:          "₹6,00,000 - ₹10,00,000",
		Description:         "Heavy-duty hydraulic press suitable for metal forming, stamping, and pressing operations. Features include pressure gauge, safety guards, and adjustable stroke length.",
		ImageFront:          placeholder("Press+Front+View"),
		ImageSide:           placeholder("Press+Side+View"),
		ImageWorking:        placeholder("Press+Working"),
		ImageCloseup:        placeholder("Press+Closeup"),
		ProductionCapacity:  "200-400 units per hour",
		AutomationLevel:     "Semi-Automatic",
		PowerRequirement:    "440V, 3 Phase, 10 kW",
		MachineDimensions:   "10ft × 6ft × 8ft (L×W×H)",
		RawMaterial:         "Mild Steel, Stainless Steel",
		OperatorSkill:       "Semi-skilled technician required",
		WarrantyInfo:        "1 year manufacturer warranty + on-site service",
		IdealIndustry:       "Metal Stamping, Automotive, Appliances",
		BusinessSizeFit:     "Medium Unit (50-200 employees)",
		InstallationSupport: true,
	}},
	{"supplier2@industrial.com", service.MachineInput{
		Name:                "MIG Welding Machine ESAB",
		Category:            "Welding Machines",
		UseCase:             "Metal Fabrication and Joining",
		PriceRange:          "₹1,50,000 - ₹3,00,000",
		Description:         "Professional MIG welding machine with advanced features. Suitable for stainless steel, aluminum, and carbon steel welding. Includes wire feeder, gas regulator, and welding torch.",
		ImageFront:          placeholder("Welding+Front+View"),
		ImageSide:           placeholder("Welding+Side+View"),
		ImageWorking:        placeholder("Welding+Working"),
		ImageCloseup:        placeholder("Welding+Closeup"),
		ProductionCapacity:  "Continuous operation",
		AutomationLevel:     "Manual",
		PowerRequirement:    "230V, Single Phase, 5 kW",
		MachineDimensions:   "3ft × 2ft × 4ft (L×W×H)",
		RawMaterial:         "Mild Steel, Stainless Steel, Aluminum",
		OperatorSkill:       "Skilled welder required",
		WarrantyInfo:        "6 months warranty + service support",
		IdealIndustry:       "Metal Fabrication, Construction, Shipbuilding",
		BusinessSizeFit:     "Small MSME (10-50 employees)",
		InstallationSupport: false,
	}},
	{"supplier1@techmachines.com", service.MachineInput{
		Name:                "Laser Cutting Machine Fiber",
		Category:            "Cutting Machines",
		UseCase:             "Precision Metal Cutting",
		PriceRange:          "₹20,00,000 - ₹35,00,000",
		Description:         "State-of-the-art fiber laser cutting machine for high-precision metal cutting. Features include CNC control, automatic focus adjustment, and exhaust system. Perfect for sheet metal fabrication.",
		ImageFront:          placeholder("Laser+Front+View"),
		ImageSide:           placeholder("Laser+Side+View"),
		ImageWorking:        placeholder("Laser+Working"),
		ImageCloseup:        placeholder("Laser+Closeup"),
		ProductionCapacity:  "1000-2000 units per 8-hour shift",
		AutomationLevel:     "Fully Automatic",
		PowerRequirement:    "440V, 3 Phase, 20 kW",
		MachineDimensions:   "15ft × 10ft × 7ft (L×W×H)",
		RawMaterial:         "Mild Steel, Stainless Steel, Aluminum, Brass",
		OperatorSkill:       "Semi-skilled technician required",
		WarrantyInfo:        "2 years comprehensive warranty + training",
		IdealIndustry:       "Sheet Metal, Signage, Electronics",
		BusinessSizeFit:     "Large Enterprise (200+ employees)",
		InstallationSupport: true,
	}},
}

// sampleEnquiries reference buyers by email and machines by index into sampleMachines.
var sampleEnquiries = []struct {
	buyer   string
	machine int
	input   service.EnquiryInput
	status  model.EnquiryStatus
}{
	{"buyer1@abcmanufacturing.com", 0, service.EnquiryInput{
		Message:        "We are looking for a CNC milling machine for our aerospace component manufacturing. Could you provide more technical specifications and delivery timeline?",
		Budget:         "₹18,00,000",
		Location:       "Pune, Maharashtra",
		ProductionNeed: "Monthly production of 500 aerospace components with tight tolerances",
	}, model.EnquiryPending},
	{"buyer2@xyzindustries.com", 2, service.EnquiryInput{
		Message:        "Interested in the hydraulic press for our metal stamping operations. Please provide information about maintenance requirements and warranty.",
		Budget:         "₹7,50,000",
		Location:       "Gurgaon, Haryana",
		ProductionNeed: "Daily stamping of automotive parts, approximately 1000 units per day",
	}, model.EnquiryResponded},
	{"buyer1@abcmanufacturing.com", 3, service.EnquiryInput{
		Message:        "Need welding solution for our fabrication workshop. What accessories are included with the machine?",
		Budget:         "₹2,50,000",
		Location:       "Pune, Maharashtra",
		ProductionNeed: "General fabrication work, including structural steel and sheet metal",
	}, model.EnquiryPending},
}

func placeholder(text string) string {
	return "https://via.placeholder.com/600x400?text=" + text
}

func seedSample(gormDB *gorm.DB, cfg *config.Config) error {
	ctx := context.Background()
	log.Println("Adding sample data...")

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	defer cacheClient.Close()

	repos := repository.NewRepositories(gormDB)
	tx := repository.NewTxManager(gormDB)

	authService := service.NewAuthService(repos.Users, auth.NewSessionManager(cfg.SessionSecret, cfg.SessionTTL), nil,
		service.AuthOptions{AllowAdminRegistration: true})
	machineService := service.NewMachineService(repos, tx, cacheClient, nil)
	enquiryService := service.NewEnquiryService(repos, tx, notify.Noop{}, nil)

	users := make(map[string]*model.User, len(sampleUsers))
	for _, u := range sampleUsers {
		user, err := authService.Register(ctx, service.RegisterInput{
			Name: u.name, Email: u.email, Password: u.password, Role: u.role,
		})
		if err != nil {
			return fmt.Errorf("register %s: %w", u.email, err)
		}
		users[u.email] = user
	}

	machines := make([]*model.Machine, 0, len(sampleMachines))
	for _, m := range sampleMachines {
		machine, err := machineService.Create(ctx, users[m.supplier].ID, m.input)
		if err != nil {
			return fmt.Errorf("create machine %q: %w", m.input.Name, err)
		}
		machines = append(machines, machine)
	}

	for _, e := range sampleEnquiries {
		machine := machines[e.machine]
		enquiry, err := enquiryService.Create(ctx, users[e.buyer].ID, machine.ID, e.input)
		if err != nil {
			return fmt.Errorf("create enquiry on %q: %w", machine.Name, err)
		}
		if e.status != enquiry.Status {
			if _, err := enquiryService.TransitionStatus(ctx, machine.SupplierID, enquiry.ID, e.status); err != nil {
				return fmt.Errorf("mark enquiry %d %s: %w", enquiry.ID, e.status, err)
			}
		}
	}

	log.Println("Sample data added successfully!")
	log.Println("Sample login credentials:")
	for _, u := range sampleUsers {
		log.Printf("  %-8s %s / %s", u.role, u.email, u.password)
	}
	return nil
}
