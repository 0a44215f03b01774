package main

import (
	"chat-gateway/domain"
	"chat-gateway/repositories"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/dgraph-io/badger/v4"
	"github.com/gookit/color"
	"github.com/kelseyhightower/envconfig"
	"github.com/mama165/sdk-go/logs"
	"github.com/olekukonko/tablewriter"
	"github.com/samber/lo"
)

type inspectConfig struct {
	BadgerFilepath string `envconfig:"BADGER_FILEPATH" default:"./data/badger"`
	Colours        bool   `envconfig:"INSPECT_COLOURS" default:"true"`
}

func main() {
	var config inspectConfig
	if err := envconfig.Process("", &config); err != nil {
		log.Fatal("Config error: ", err)
	}
	dbPath := flag.String("db", config.BadgerFilepath, "Path to badger DB")
	base := flag.String("base", "", "Only show rooms owned by this node address")
	flag.Parse()
	color.Enable = config.Colours

	// Read-only so a running gateway keeps its lock
	db, err := badger.Open(badger.DefaultOptions(*dbPath).
		WithReadOnly(true).
		WithBypassLockGuard(true).
		WithLoggingLevel(badger.WARNING))
	if err != nil {
		log.Fatal("Error while opening Badger: ", err)
	}
	defer db.Close()

	repository := repositories.NewRoomRepository(db, logs.GetLoggerFromString("WARN"))
	var rooms []repositories.RoomRecord
	if *base == "" {
		rooms, err = repository.ListRooms()
	} else {
		rooms, err = repository.LoadRoomsByBaseAddress(*base)
	}
	if err != nil {
		log.Fatal("Error while reading rooms: ", err)
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"ID", "Address", "Name", "Node", "Flags", "Max", "Admins", "Mods", "Banned"})
	table.SetAutoWrapText(false)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetTablePadding("\t")

	for _, room := range rooms {
		table.Append([]string{
			fmt.Sprint(room.ID),
			room.Address,
			room.Name,
			room.SrcAddress,
			flags(domain.RoomAttributes(room.Attributes), room.Password != ""),
			maxSize(room.MaxSize),
			ids(room.Administrators),
			ids(room.Moderators),
			ids(room.Banned),
		})
	}

	color.New(color.BgBlack, color.FgGreen).Printf(" %d room(s) in %s \n", len(rooms), *dbPath)
	table.Render()
}

func flags(attributes domain.RoomAttributes, hasPassword bool) string {
	var res []string
	if attributes.Has(domain.RoomPrivate) {
		res = append(res, color.Yellow.Render("private"))
	}
	if attributes.Has(domain.RoomModerated) {
		res = append(res, color.Cyan.Render("moderated"))
	}
	if attributes.Has(domain.RoomPersistent) {
		res = append(res, "persistent")
	}
	if hasPassword {
		res = append(res, color.Red.Render("password"))
	}
	return strings.Join(res, ",")
}

func maxSize(size uint32) string {
	if size == 0 {
		return "-"
	}
	return fmt.Sprint(size)
}

func ids(values []uint32) string {
	return strings.Join(lo.Map(values, func(id uint32, _ int) string { return fmt.Sprint(id) }), ",")
}
