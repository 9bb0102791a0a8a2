//go:build ignore
// +build ignore

package main

import (
	"context"
	"log"
	"time"

	party "github.com/cydxin/party-sdk"
	"github.com/cydxin/party-sdk/models"
	"github.com/cydxin/party-sdk/service"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

// Example: 不走 HTTP，直接调用 service 走一遍组局流程
//
// 发帖（4 人）-> 两人申请 -> 通过一个、拒绝一个 -> 被拒的人重新申请 -> 通过的人取消
// 每一步之后打印人数和截止状态；通知会落库，在线用户同时收到推送。

func main() {
	dsn := "user:password@tcp(127.0.0.1:3306)/partydb?charset=utf8mb4&parseTime=True&loc=Local"
	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	engine, err := party.NewEngine(party.WithDB(db), party.WithAutoMigrate(true), party.WithServiceDebug(true))
	if err != nil {
		log.Fatalf("NewEngine: %v", err)
	}
	defer engine.Close()

	ctx := context.Background()
	owner, alice, bob := seedUsers(db)
	theme := models.Theme{Title: "密室逃脱·古宅", Brand: "XX 密室", Location: "上海"}
	db.Create(&theme)

	ps := engine.PartyService
	postID, err := ps.CreatePost(ctx, owner, theme.ID, service.CreatePostInput{
		Title:           "周六下午缺两人",
		MaxParticipants: 4,
		Deadline:        time.Now().Add(48 * time.Hour),
	})
	must(err)

	must(ps.JoinPost(ctx, postID, alice))
	must(ps.JoinPost(ctx, postID, bob))

	joins, err := ps.ListJoinRequestsForWriter(ctx, owner)
	must(err)
	for _, j := range joins {
		status := "APPROVED"
		if j.UserID == bob {
			status = "REJECTED"
		}
		must(ps.Decide(ctx, j.ID, owner, status))
	}
	show(ctx, ps, postID, owner)

	// 被拒绝后可以重新申请
	must(ps.JoinPost(ctx, postID, bob))
	show(ctx, ps, postID, owner)

	must(ps.CancelJoin(ctx, postID, alice))
	show(ctx, ps, postID, owner)

	list, err := engine.NotificationService.ListByReceiver(ctx, owner)
	must(err)
	for _, n := range list {
		log.Printf("owner notification: [%s] %s", n.Type, n.Content)
	}
}

func seedUsers(db *gorm.DB) (owner, alice, bob uint64) {
	users := []models.User{{Nickname: "发起人"}, {Nickname: "小王"}, {Nickname: "小李"}}
	db.Create(&users)
	return users[0].ID, users[1].ID, users[2].ID
}

func show(ctx context.Context, ps *service.PartyService, postID, viewer uint64) {
	d, err := ps.GetPostDetail(ctx, postID, viewer)
	must(err)
	log.Printf("post %d: %d/%d closed=%v joins=%d", d.ID, d.CurrentParticipants, d.MaxParticipants, d.IsClosed, len(d.Joins))
}

func must(err error) {
	if err != nil {
		log.Fatal(err)
	}
}
