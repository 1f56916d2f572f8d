package main

import (
	"context"
	"fmt"
	"sync"

	"github.com/brianvoe/gofakeit/v6"
	"go.uber.org/zap"

	"github.com/tnote-app/tnote_service/core"
	"github.com/tnote-app/tnote_service/models/dto"
	"github.com/tnote-app/tnote_service/repo/mysql"
	"github.com/tnote-app/tnote_service/service"
)

// seedTagPool 供随机抽取的标签池，保证标签会被多个话题复用。
var seedTagPool = []string{
	"golang", "database", "frontend", "devops", "kubernetes",
	"mysql", "redis", "kafka", "testing", "architecture",
}

// Seed 通过服务层填充测试数据：先建一批用户，再为每个用户组合
// 创建带标签的话题和嵌套的回帖树。走服务层意味着事件日志与读模型
// 和线上写路径完全一致。
func Seed(
	ctx context.Context,
	topicSvc service.TopicService,
	postSvc service.PostService,
	userRepo mysql.UserRepository,
	logger *core.ZapLogger,
	numTopics int,
) {
	logger.Info("开始填充测试数据 (通过服务层)...", zap.Int("话题数量", numTopics))

	// --- 1. 先准备一批用户 ---
	numUsers := numTopics/2 + 1
	if numUsers > 20 {
		numUsers = 20
	}
	userIDs := make([]int64, 0, numUsers)
	for i := 0; i < numUsers; i++ {
		username := gofakeit.Username()
		user, err := userRepo.GetOrCreate(ctx, username, gofakeit.Email())
		if err != nil {
			logger.Error("创建测试用户失败", zap.Error(err), zap.String("username", username))
			continue
		}
		userIDs = append(userIDs, user.ID)
	}
	if len(userIDs) == 0 {
		logger.Error("没有可用的测试用户，放弃填充")
		return
	}
	logger.Info("测试用户准备完成", zap.Int("数量", len(userIDs)))

	pickUser := func() int64 {
		return userIDs[gofakeit.Number(0, len(userIDs)-1)]
	}

	// --- 2. 并发创建话题及其回帖树 ---
	var wg sync.WaitGroup
	concurrencyLimit := 10
	semaphore := make(chan struct{}, concurrencyLimit)

	for i := 0; i < numTopics; i++ {
		wg.Add(1)
		semaphore <- struct{}{}

		go func(itemIndex int) {
			defer wg.Done()
			defer func() { <-semaphore }()

			// 随机抽 0~3 个标签
			numTags := gofakeit.Number(0, 3)
			tags := make([]string, 0, numTags)
			for len(tags) < numTags {
				tag := seedTagPool[gofakeit.Number(0, len(seedTagPool)-1)]
				duplicate := false
				for _, existing := range tags {
					if existing == tag {
						duplicate = true
						break
					}
				}
				if !duplicate {
					tags = append(tags, tag)
				}
			}

			createReq := &dto.CreateTopicRequest{
				Title:   gofakeit.Sentence(gofakeit.Number(4, 10)),
				Content: gofakeit.Paragraph(2, 4, 15, "\n\n"),
				Tags:    tags,
				UserID:  pickUser(),
			}

			topicID, err := topicSvc.CreateTopic(ctx, createReq)
			if err != nil {
				logger.Error(fmt.Sprintf("创建话题 %d/%d 失败", itemIndex+1, numTopics),
					zap.Error(err),
					zap.String("title", createReq.Title))
				return
			}
			logger.Info(fmt.Sprintf("成功创建话题 %d/%d", itemIndex+1, numTopics),
				zap.String("topic_id", topicID))

			seedThread(ctx, postSvc, logger, topicID, pickUser)
		}(i)
	}

	wg.Wait()
	logger.Info("测试数据填充完成")
}

// seedThread 为话题生成一棵小回帖树：若干根帖，部分根帖带两层回复。
func seedThread(
	ctx context.Context,
	postSvc service.PostService,
	logger *core.ZapLogger,
	topicID string,
	pickUser func() int64,
) {
	numRoots := gofakeit.Number(0, 4)
	for i := 0; i < numRoots; i++ {
		rootID, err := postSvc.CreatePost(ctx, &dto.CreatePostRequest{
			Content: gofakeit.Paragraph(1, 3, 12, " "),
			TopicID: topicID,
			UserID:  pickUser(),
		})
		if err != nil {
			logger.Error("创建根帖失败", zap.Error(err), zap.String("topic_id", topicID))
			continue
		}

		// 一半的根帖带子回复
		if gofakeit.Bool() {
			continue
		}
		numReplies := gofakeit.Number(1, 3)
		for j := 0; j < numReplies; j++ {
			parentID := rootID
			replyID, err := postSvc.CreatePost(ctx, &dto.CreatePostRequest{
				Content:      gofakeit.Sentence(gofakeit.Number(5, 20)),
				TopicID:      topicID,
				ParentPostID: &parentID,
				UserID:       pickUser(),
			})
			if err != nil {
				logger.Error("创建回复失败", zap.Error(err), zap.String("parent_post_id", parentID))
				continue
			}
			// 偶尔再挂一层，让树有深度
			if gofakeit.Bool() {
				grandParent := replyID
				if _, err := postSvc.CreatePost(ctx, &dto.CreatePostRequest{
					Content:      gofakeit.Sentence(gofakeit.Number(5, 15)),
					TopicID:      topicID,
					ParentPostID: &grandParent,
					UserID:       pickUser(),
				}); err != nil {
					logger.Error("创建二层回复失败", zap.Error(err))
				}
			}
		}
	}
}
